// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-tools CLI. Every academic
// graph tool is a subcommand; "serve" exposes the same tools over MCP.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-tools/internal/tools"
	"github.com/pdiddy/scholar-tools/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the scholar-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar-tools",
	Short: "Search academic papers and authors through the ai4scholar.net graph",
	Long: `scholar-tools queries the ai4scholar.net academic graph (a Semantic Scholar
compatible API) and prints Markdown. Each tool is a subcommand: search, title,
paper, papers, citations, references, recommend, author-search, author,
author-papers and bulk.

"scholar-tools serve" exposes the same tools to MCP clients over stdio or
streamable HTTP. The API key is read from --api-key, SCHOLAR_TOOLS_API_KEY,
the config file, AI4SCHOLAR_API_KEY in .env, or .secrets/ai4scholar-api-key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./scholar-tools.yaml or ~/.config/scholar-tools/scholar-tools.yaml)")
	flags.String("api-key", "", "ai4scholar.net API key")
	flags.String("base-url", "", "API host (default https://ai4scholar.net)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")
	flags.String("env-file", ".env", "dotenv file to read AI4SCHOLAR_API_KEY from")
	flags.String("secrets-dir", ".secrets/", "directory of credential files")
	flags.Bool("no-history", false, "do not record this invocation")

	_ = viper.BindPFlag("api.base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
}

func initConfig() {
	setDefaults(types.DefaultConfig())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-tools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-tools"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_TOOLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so environment overrides apply
// even when no config file exists.
func setDefaults(cfg types.Config) {
	viper.SetDefault("api.base_url", cfg.API.BaseURL)
	viper.SetDefault("api.key", cfg.API.Key)
	viper.SetDefault("api.timeout", cfg.API.Timeout)
	viper.SetDefault("api.validate_timeout", cfg.API.ValidateTimeout)
	viper.SetDefault("api.rate_limit_retries", cfg.API.RateLimitRetries)
	viper.SetDefault("api.user_agent", cfg.API.UserAgent)
	viper.SetDefault("bulk.concurrency", cfg.Bulk.Concurrency)
	viper.SetDefault("history.enabled", cfg.History.Enabled)
	viper.SetDefault("history.path", cfg.History.Path)
	viper.SetDefault("log.level", cfg.Log.Level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var f *tools.Failure
		if errors.As(err, &f) {
			fmt.Fprintln(os.Stderr, f.Message)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
