// Package server exposes the evaluator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fernandezvara/passcheck"
	"github.com/fernandezvara/passcheck/internal/config"
	"github.com/fernandezvara/passcheck/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg     config.ServerConfig
	engine  *gin.Engine
	metrics *Metrics
	log     *logger.Logger
}

// New builds the router. All requests share ev.
func New(cfg config.ServerConfig, ev *passcheck.Evaluator, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		engine:  gin.New(),
		metrics: NewMetrics(),
		log:     log,
	}

	limiter := NewRateLimiter(cfg.RateLimit, cfg.Burst)
	s.engine.Use(
		gin.Recovery(),
		RequestID(),
		AccessLog(log),
		Instrument(s.metrics),
	)

	s.engine.GET("/health/live", liveness)
	s.engine.GET("/metrics", s.metrics.Handler())

	h := &evaluateHandler{evaluator: ev, metrics: s.metrics}
	api := s.engine.Group("/api/v1", limiter.RateLimit(), BodyLimit(cfg.MaxBodyBytes))
	h.RegisterRoutes(api)

	s.engine.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "not_found", "route not found")
	})

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
