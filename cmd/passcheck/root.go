package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernandezvara/passcheck"
	"github.com/fernandezvara/passcheck/internal/config"
	"github.com/fernandezvara/passcheck/internal/logger"
)

// exitError carries a non-1 exit status out of a command without printing.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

// app holds state resolved once per invocation.
type app struct {
	configFile string

	cfg       *config.Config
	log       *logger.Logger
	evaluator *passcheck.Evaluator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "passcheck",
		Short: "Evaluate password strength",
		Long: `passcheck scores passwords from 0 to 100 and classifies them as Weak,
Medium or Strong using length, character variety, entropy, a common-password
dictionary and weak-pattern detection.

Settings are read from passcheck.yaml, PASSCHECK_* environment variables and
flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "Config file (default: ./passcheck.yaml)")
	pf.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.String("log-format", "console", "Log format (console, json)")
	pf.String("dictionary", "", "Common-password list replacing the embedded one (plain, gzip or zstd)")

	root.AddCommand(
		newCheckCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: logger.Format(cfg.Log.Format),
		Output: cmd.ErrOrStderr(),
	})

	var opts []passcheck.Option
	if cfg.Dictionary.Path != "" {
		dict, err := passcheck.LoadDictionaryFile(cfg.Dictionary.Path)
		if err != nil {
			return fmt.Errorf("load dictionary: %w", err)
		}
		a.log.Debug("dictionary loaded", "path", cfg.Dictionary.Path, "entries", dict.Len())
		opts = append(opts, passcheck.WithDictionary(dict))
	}
	a.evaluator = passcheck.New(opts...)
	return nil
}
