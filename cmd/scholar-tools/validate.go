// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-tools/internal/tools"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the API key is accepted",
	Long: `Validate sends one minimal search with the configured API key and reports
whether it was accepted. Rejected keys, exhausted credits, timeouts and
network failures are reported with the reason.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		v := tools.NewValidator(a.client, a.cfg.API.ValidateTimeout)
		if err := v.Validate(context.Background(), a.cfg.API.Key); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
