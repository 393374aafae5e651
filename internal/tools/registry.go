// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/pdiddy/scholar-tools/internal/history"
	"github.com/pdiddy/scholar-tools/internal/scholar"
)

// Recorder persists tool invocations. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) error
}

// Options configures a Registry.
type Options struct {
	// Concurrency bounds in-flight requests for papers_detail and bulk_search.
	Concurrency int

	// Recorder, if set, receives one entry per invocation.
	Recorder Recorder

	Log zerolog.Logger
}

// Registry holds the tools in catalogue order.
type Registry struct {
	tools    []Tool
	byName   map[string]Tool
	recorder Recorder
	log      zerolog.Logger
}

// NewRegistry creates the full tool set backed by c.
func NewRegistry(c *scholar.Client, opts Options) *Registry {
	r := &Registry{
		byName:   make(map[string]Tool),
		recorder: opts.Recorder,
		log:      opts.Log,
	}
	r.add(
		NewPaperSearch(c),
		NewTitleSearch(c),
		NewPaperDetail(c),
		NewPapersDetail(c, opts.Concurrency),
		NewCitations(c),
		NewReferences(c),
		NewRecommendations(c),
		NewAuthorSearch(c),
		NewAuthorDetail(c),
		NewAuthorPapers(c),
		NewBulkSearch(c, opts.Concurrency),
	)
	return r
}

func (r *Registry) add(tools ...Tool) {
	for _, t := range tools {
		r.tools = append(r.tools, t)
		r.byName[t.Name()] = t
	}
}

// Tools returns the tools in catalogue order.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Lookup returns the tool called name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Invoke runs t and records the outcome. A recorder failure is logged and
// never changes the result.
func (r *Registry) Invoke(ctx context.Context, t Tool, args Args) (string, error) {
	start := time.Now()
	out, err := t.Run(ctx, args)
	elapsed := time.Since(start)

	ev := r.log.Debug().Str("tool", t.Name()).Dur("elapsed", elapsed)
	if err != nil {
		ev = ev.Str("error", err.Error())
	}
	ev.Msg("tool invoked")

	if r.recorder != nil {
		r.record(ctx, t.Name(), args, out, err, elapsed)
	}
	return out, err
}

func (r *Registry) record(ctx context.Context, name string, args Args, out string, runErr error, elapsed time.Duration) {
	encoded, err := json.Marshal(args)
	if err != nil {
		encoded = []byte("{}")
	}
	summary := out
	if runErr != nil {
		summary = runErr.Error()
	}
	e := history.Entry{
		Tool:       name,
		Arguments:  string(encoded),
		OK:         runErr == nil,
		Summary:    firstLine(summary),
		DurationMS: elapsed.Milliseconds(),
	}
	// The tool context may already be cancelled; the record should still land.
	if err := r.recorder.Record(context.WithoutCancel(ctx), e); err != nil {
		r.log.Warn().Err(err).Str("tool", name).Msg("recording history")
	}
}

// Handler adapts t to an MCP tool handler. Tool failures become MCP error
// results carrying the user-facing message.
func (r *Registry) Handler(t Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := r.Invoke(ctx, t, Args(req.GetArguments()))
		if err != nil {
			var f *Failure
			if errors.As(err, &f) {
				return mcp.NewToolResultError(f.Message), nil
			}
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
