package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fernandezvara/passcheck"
	"github.com/fernandezvara/passcheck/internal/render"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     ErrorDetail{Code: code, Message: message},
		RequestID: c.GetString(ContextRequestID),
	})
}

// evaluateRequest keeps Password untyped so null and non-string values
// reach the evaluator and are rejected there.
type evaluateRequest struct {
	Password any `json:"password"`
}

type evaluateHandler struct {
	evaluator *passcheck.Evaluator
	metrics   *Metrics
}

func (h *evaluateHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/evaluate", h.Evaluate)
}

// Evaluate handles POST /api/v1/evaluate.
func (h *evaluateHandler) Evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
			return
		}
		abortWithError(c, http.StatusBadRequest, "invalid_request", "request body must be a JSON object")
		return
	}

	report, err := h.evaluator.EvaluateValue(req.Password)
	if err != nil {
		if errors.Is(err, passcheck.ErrInvalidInput) {
			h.metrics.rejected.Inc()
			abortWithError(c, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "internal_error", "evaluation failed")
		return
	}
	h.metrics.ObserveReport(report)

	shannon := 0.0
	if s, ok := req.Password.(string); ok {
		shannon = passcheck.ShannonEntropy(s)
	}
	c.JSON(http.StatusOK, render.NewResult(report, shannon))
}

func liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
