// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-tools/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, export or clear recorded tool invocations",
	Long: `History manages the local SQLite log of tool invocations made from the CLI
and the MCP server. Recording is controlled by history.enabled and the
database lives at history.path.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent invocations as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := store.List(context.Background(), limit)
		if err != nil {
			return err
		}
		history.RenderTable(cmd.OutOrStdout(), entries)
		return nil
	},
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all invocations as YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.All(context.Background())
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		if out == "" || out == "-" {
			return history.Export(cmd.OutOrStdout(), entries, format)
		}
		if err := exportToFile(out, entries, format); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", len(entries), out)
		return nil
	},
}

// exportToFile writes entries to path. The format is checked before the
// file is created, and a failed close is reported.
func exportToFile(path string, entries []history.Entry, format string) (err error) {
	if err := history.CheckFormat(format); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return history.Export(f, entries, format)
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded invocations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", n)
		return nil
	},
}

// openHistory opens the configured store regardless of history.enabled so
// earlier records stay reachable after recording is switched off.
func openHistory() (*history.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return history.Open(cfg.History.Path)
}

func init() {
	historyListCmd.Flags().Int("limit", history.DefaultListLimit, "number of entries to show")
	historyExportCmd.Flags().String("format", history.FormatYAML, "export format: yaml or json")
	historyExportCmd.Flags().String("out", "", "output file (default: stdout)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
