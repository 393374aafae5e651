// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpserver "github.com/pdiddy/scholar-tools/internal/server"
	"github.com/pdiddy/scholar-tools/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tools over MCP",
	Long: `Serve registers every tool on an MCP server. By default it speaks MCP over
stdin/stdout; --http starts a streamable HTTP endpoint instead. Logs go to
stderr so the stdio transport stays clean.

With --validate the API key is checked once before serving and the command
fails if it is rejected.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if check, _ := cmd.Flags().GetBool("validate"); check {
		v := tools.NewValidator(a.client, a.cfg.API.ValidateTimeout)
		if err := v.Validate(context.Background(), a.cfg.API.Key); err != nil {
			return err
		}
		a.log.Info().Msg("api key accepted")
	}

	s := mcpserver.New(a.registry, version)

	addr, _ := cmd.Flags().GetString("http")
	if addr != "" {
		a.log.Info().Str("addr", addr).Msg("serving MCP over streamable HTTP")
		if err := server.NewStreamableHTTPServer(s).Start(addr); err != nil {
			return fmt.Errorf("serving HTTP: %w", err)
		}
		return nil
	}

	a.log.Info().Int("tools", len(a.registry.Tools())).Msg("serving MCP over stdio")
	return server.ServeStdio(s)
}

func init() {
	serveCmd.Flags().String("http", "", "listen address for streamable HTTP, e.g. :8080 (default: stdio)")
	serveCmd.Flags().Bool("validate", false, "check the API key before serving")

	rootCmd.AddCommand(serveCmd)
}
