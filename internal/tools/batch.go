// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/scholar-tools/internal/render"
	"github.com/pdiddy/scholar-tools/internal/scholar"
)

const (
	multiFields = "paperId,title,authors,year,abstract,citationCount,openAccessPdf,venue,externalIds,tldr"
	bulkFields  = "paperId,title,authors,year,citationCount,openAccessPdf"

	maxPaperIDs = 20
	maxQueries  = 10
)

// fanOut calls fetch for every item with at most limit calls in flight.
// Results and per-item errors are returned in input order. An error that
// IsAbort reports on stops the remaining items and is returned alone.
func fanOut[T any](ctx context.Context, limit int, items []string, fetch func(context.Context, string) (T, error)) ([]T, []error, error) {
	if limit < 1 {
		limit = 1
	}
	results := make([]T, len(items))
	errs := make([]error, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			v, err := fetch(gctx, item)
			if err != nil && scholar.IsAbort(err) {
				return err
			}
			results[i], errs[i] = v, err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return results, errs, nil
}

// PapersDetail implements papers_detail.
type PapersDetail struct {
	client      *scholar.Client
	concurrency int
}

// NewPapersDetail creates a PapersDetail tool fetching up to concurrency
// papers at once.
func NewPapersDetail(c *scholar.Client, concurrency int) *PapersDetail {
	return &PapersDetail{client: c, concurrency: concurrency}
}

func (t *PapersDetail) Name() string { return "papers_detail" }

func (t *PapersDetail) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Get details for several papers at once (up to 20)."),
		mcp.WithString("paper_ids", mcp.Required(), mcp.Description("Paper IDs separated by commas or newlines")),
	)
}

func (t *PapersDetail) Run(ctx context.Context, args Args) (string, error) {
	raw := args.String("paper_ids")
	if raw == "" {
		return "", fail("Error: Paper IDs are required")
	}
	ids := splitList(raw, ",\n")
	if len(ids) == 0 {
		return "", fail("Error: No valid paper IDs found")
	}
	if len(ids) > maxPaperIDs {
		ids = ids[:maxPaperIDs]
	}

	papers, errs, err := fanOut(ctx, t.concurrency, ids, func(ctx context.Context, id string) (*scholar.Paper, error) {
		return t.client.Paper(ctx, id, multiFields)
	})
	if err != nil {
		return "", apiFailure(err, "")
	}

	sections := []string{render.MultiHeader(len(ids))}
	for i, id := range ids {
		sections = append(sections, render.MultiPaper(i+1, id, papers[i], errs[i]))
	}
	return render.Join(sections), nil
}

// BulkSearch implements bulk_search.
type BulkSearch struct {
	client      *scholar.Client
	concurrency int
}

// NewBulkSearch creates a BulkSearch tool running up to concurrency
// queries at once.
func NewBulkSearch(c *scholar.Client, concurrency int) *BulkSearch {
	return &BulkSearch{client: c, concurrency: concurrency}
}

func (t *BulkSearch) Name() string { return "bulk_search" }

func (t *BulkSearch) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Run several paper searches at once (up to 10 queries)."),
		mcp.WithString("queries", mcp.Required(), mcp.Description("Queries separated by newlines or semicolons")),
		mcp.WithNumber("limit_per_query", mcp.Description("Results per query (default 5, max 20)"), mcp.DefaultNumber(5), mcp.Min(1), mcp.Max(20)),
	)
}

func (t *BulkSearch) Run(ctx context.Context, args Args) (string, error) {
	raw := args.String("queries")
	if raw == "" {
		return "", fail("Error: Search queries are required")
	}
	queries := splitList(raw, "\n;")
	if len(queries) == 0 {
		return "", fail("Error: No valid queries found")
	}
	truncated := len(queries) > maxQueries
	if truncated {
		queries = queries[:maxQueries]
	}
	limit := args.limit("limit_per_query", 5, 1, 20)

	pages, errs, err := fanOut(ctx, t.concurrency, queries, func(ctx context.Context, q string) (*scholar.PaperPage, error) {
		return t.client.SearchPapers(ctx, scholar.PaperSearch{Query: q, Limit: limit}, bulkFields)
	})
	if err != nil {
		return "", apiFailure(err, "")
	}

	sections := []string{render.BulkHeader(len(queries), limit)}
	for i, q := range queries {
		sections = append(sections, render.BulkQuery(i+1, q, pages[i], errs[i]))
	}
	out := render.Join(sections)
	if truncated {
		out = render.BulkTruncatedNote + "\n" + out
	}
	return out, nil
}
