package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernandezvara/passcheck"
)

func newGenerateCmd(a *app) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a strong random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pwd, err := a.evaluator.Generate(length)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pwd)
			return err
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 16,
		fmt.Sprintf("Password length (%d-%d)", passcheck.MinGenerateLength, passcheck.MaxGenerateLength))
	return cmd
}
