// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines configuration shared by the CLI, the MCP server
// and the internal packages. Every struct carries yaml tags for the config
// file and mapstructure tags for viper.
package types

import "time"

// APIConfig holds settings for talking to the academic graph API.
type APIConfig struct {
	// BaseURL is the API host (default "https://ai4scholar.net").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Key is the bearer credential attached to every request.
	Key string `json:"-" yaml:"key,omitempty" mapstructure:"key"`

	// Timeout bounds each tool request (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// ValidateTimeout bounds the credential check request (default 10s).
	ValidateTimeout time.Duration `json:"validate_timeout" yaml:"validate_timeout" mapstructure:"validate_timeout"`

	// RateLimitRetries is how many times an HTTP 429 is retried (default 2, 0 disables).
	RateLimitRetries int `json:"rate_limit_retries" yaml:"rate_limit_retries" mapstructure:"rate_limit_retries"`

	// UserAgent is sent with every request.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// BulkConfig controls the multi-request tools (bulk search, multi-paper detail).
type BulkConfig struct {
	// Concurrency is the number of requests in flight at once (default 1).
	Concurrency int `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency"`
}

// HistoryConfig controls the local invocation log.
type HistoryConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Path is the SQLite database file. A leading "~" expands to the home directory.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all settings.
type Config struct {
	API     APIConfig     `json:"api" yaml:"api" mapstructure:"api"`
	Bulk    BulkConfig    `json:"bulk" yaml:"bulk" mapstructure:"bulk"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:          "https://ai4scholar.net",
			Timeout:          30 * time.Second,
			ValidateTimeout:  10 * time.Second,
			RateLimitRetries: 2,
			UserAgent:        "scholar-tools/dev",
		},
		Bulk: BulkConfig{
			Concurrency: 1,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "~/.local/share/scholar-tools/history.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
