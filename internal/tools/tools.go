// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools implements the academic graph tools. Each tool parses its
// arguments, validates required fields, clamps limits, calls the API and
// renders Markdown. The same tools back the MCP server and the CLI.
package tools

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pdiddy/scholar-tools/internal/render"
)

// Tool is one named capability with a parameter schema.
type Tool interface {
	Name() string
	Definition() mcp.Tool

	// Run returns the Markdown output, or a *Failure whose message is the
	// text shown to the user.
	Run(ctx context.Context, args Args) (string, error)
}

// Failure is a tool error carrying the user-facing message. Err is the
// underlying cause, if any.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Err }

func fail(msg string) *Failure {
	return &Failure{Message: msg}
}

// apiFailure wraps an API error with its mapped message. notFound is the
// 404 text, "" when the endpoint has none.
func apiFailure(err error, notFound string) *Failure {
	return &Failure{Message: render.ErrorMessage(err, notFound), Err: err}
}

// Args holds tool arguments as decoded from an MCP request or built by the
// CLI. Values are loosely typed: numbers may arrive as float64, int or
// string.
type Args map[string]any

// String returns the trimmed string value of key, or "".
func (a Args) String(key string) string {
	switch v := a[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Int returns the integer value of key, or def when it is absent or not a
// number.
func (a Args) Int(key string, def int) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		switch {
		case math.IsNaN(v):
			return def
		case v >= math.MaxInt:
			return math.MaxInt
		case v <= math.MinInt:
			return math.MinInt
		}
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return n
	default:
		return def
	}
}

// Bool returns the boolean value of key. Strings "true", "1" and "yes"
// count as true.
func (a Args) Bool(key string) bool {
	switch v := a[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		}
	}
	return false
}

// limit reads an integer argument and clamps it to [lo, hi].
func (a Args) limit(key string, def, lo, hi int) int {
	return clamp(a.Int(key, def), lo, hi)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// splitList splits s on any of seps, trims each item and drops empties.
func splitList(s, seps string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
