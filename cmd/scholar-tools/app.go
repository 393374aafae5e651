// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-tools/internal/history"
	"github.com/pdiddy/scholar-tools/internal/logging"
	"github.com/pdiddy/scholar-tools/internal/scholar"
	"github.com/pdiddy/scholar-tools/internal/secrets"
	"github.com/pdiddy/scholar-tools/internal/tools"
	"github.com/pdiddy/scholar-tools/pkg/types"
)

// app holds what every subcommand needs: resolved config, logger, API
// client, tool registry and, when enabled, the history store.
type app struct {
	cfg      types.Config
	log      zerolog.Logger
	client   *scholar.Client
	registry *tools.Registry
	store    *history.Store
}

// newApp loads configuration and the credential, then wires the tools.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		return nil, err
	}

	key, err := resolveAPIKey(cmd, cfg.API.Key, log)
	if err != nil {
		return nil, err
	}
	cfg.API.Key = key

	a := &app{
		cfg:    cfg,
		log:    log,
		client: scholar.NewClient(cfg.API, log),
	}

	opts := tools.Options{Concurrency: cfg.Bulk.Concurrency, Log: log}
	noHistory, _ := cmd.Flags().GetBool("no-history")
	if cfg.History.Enabled && !noHistory {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.History.Path).Msg("history disabled")
		} else {
			a.store = store
			opts.Recorder = store
		}
	}
	a.registry = tools.NewRegistry(a.client, opts)
	return a, nil
}

// Close releases the history store.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.API.UserAgent == "" || cfg.API.UserAgent == types.DefaultConfig().API.UserAgent {
		cfg.API.UserAgent = "scholar-tools/" + version
	}
	if cfg.Bulk.Concurrency < 1 {
		cfg.Bulk.Concurrency = 1
	}
	if cfg.API.RateLimitRetries < 0 {
		cfg.API.RateLimitRetries = 0
	}
	cfg.History.Path = expandHome(cfg.History.Path)
	return cfg, nil
}

// resolveAPIKey picks the credential in precedence order: --api-key flag,
// configured value (file or SCHOLAR_TOOLS_API_KEY), dotenv file, secrets
// directory. An absent key is not an error here; each tool reports it.
func resolveAPIKey(cmd *cobra.Command, configured string, log zerolog.Logger) (string, error) {
	flagKey, _ := cmd.Flags().GetString("api-key")
	if key := secrets.FirstNonEmpty(flagKey, configured); key != "" {
		return key, nil
	}

	envFile, _ := cmd.Flags().GetString("env-file")
	dotenv, err := secrets.LoadDotEnv(envFile)
	if err != nil {
		return "", err
	}
	if key := secrets.FirstNonEmpty(dotenv[secrets.APIKeyEnv]); key != "" {
		log.Debug().Str("source", envFile).Msg("api key loaded")
		return key, nil
	}

	dir, _ := cmd.Flags().GetString("secrets-dir")
	loaded, err := secrets.Load(dir, log)
	if err != nil {
		return "", err
	}
	if key := loaded[secrets.APIKeyFile]; key != "" {
		log.Debug().Str("source", filepath.Join(dir, secrets.APIKeyFile)).Msg("api key loaded")
		return key, nil
	}
	return "", nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
