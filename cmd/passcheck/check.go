package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fernandezvara/passcheck"
	"github.com/fernandezvara/passcheck/internal/render"
)

type checkOptions struct {
	stdin     bool
	failUnder int
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Evaluate a password",
		Long: `Evaluate a password and print its score, strength, composition and
advice. The password is taken from the argument, from standard input with
--stdin, or from a prompt that does not echo.

Examples:
  passcheck check                      # prompt
  echo 'hunter2' | passcheck check --stdin -o json
  passcheck check --fail-under 70 < pw.txt --stdin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "Read the password from the first line of standard input")
	cmd.Flags().IntVar(&opts.failUnder, "fail-under", 0, "Exit with status 2 when the score is below this value")
	cmd.Flags().StringP("output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().Bool("color", true, "Colorize human output")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string, opts *checkOptions) error {
	format, err := render.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	password, err := readPassword(cmd, args, opts.stdin)
	if err != nil {
		return err
	}

	report, err := a.evaluator.Evaluate(password)
	if err != nil {
		return err
	}
	a.log.Debug("password evaluated",
		"score", report.Score,
		"strength", string(report.Strength),
		"findings", len(report.Patterns),
	)

	out := cmd.OutOrStdout()
	color := a.cfg.Output.Color && isTerminal(out)
	res := render.NewResult(report, passcheck.ShannonEntropy(password))
	if err := render.Write(out, format, res, render.Options{Color: color}); err != nil {
		return err
	}

	if opts.failUnder > 0 && report.Score < opts.failUnder {
		return &exitError{code: 2, msg: fmt.Sprintf("score %d is below %d", report.Score, opts.failUnder)}
	}
	return nil
}

func readPassword(cmd *cobra.Command, args []string, fromStdin bool) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if !fromStdin {
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return "", fmt.Errorf("read password: %w", err)
			}
			return string(b), nil
		}
	}
	return readLine(in)
}

// readLine returns the first line of r without its line terminator.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
