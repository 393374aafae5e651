// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pdiddy/scholar-tools/internal/render"
	"github.com/pdiddy/scholar-tools/internal/scholar"
)

const (
	authorSearchFields = "authorId,name,affiliations,paperCount,citationCount,hIndex"
	authorDetailFields = "authorId,name,affiliations,paperCount,citationCount,hIndex,homepage,externalIds"
	authorPaperFields  = "paperId,title,year,citationCount,venue,openAccessPdf"
)

func authorNotFound(id string) string {
	return "Author not found with ID: " + id
}

// AuthorSearch implements author_search.
type AuthorSearch struct {
	client *scholar.Client
}

// NewAuthorSearch creates an AuthorSearch tool.
func NewAuthorSearch(c *scholar.Client) *AuthorSearch { return &AuthorSearch{client: c} }

func (t *AuthorSearch) Name() string { return "author_search" }

func (t *AuthorSearch) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Search researchers by name. Returns affiliations, paper and citation counts, h-index and author IDs."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Author name")),
		mcp.WithNumber("limit", mcp.Description("Number of authors (default 5, max 20)"), mcp.DefaultNumber(5), mcp.Min(1), mcp.Max(20)),
	)
}

func (t *AuthorSearch) Run(ctx context.Context, args Args) (string, error) {
	query := args.String("query")
	if query == "" {
		return "", fail("Error: Author name is required")
	}
	limit := args.limit("limit", 5, 1, 20)

	page, err := t.client.SearchAuthors(ctx, query, limit, authorSearchFields)
	if err != nil {
		return "", apiFailure(err, "")
	}
	return render.AuthorSearch(query, page), nil
}

// AuthorDetail implements author_detail.
type AuthorDetail struct {
	client *scholar.Client
}

// NewAuthorDetail creates an AuthorDetail tool.
func NewAuthorDetail(c *scholar.Client) *AuthorDetail { return &AuthorDetail{client: c} }

func (t *AuthorDetail) Name() string { return "author_detail" }

func (t *AuthorDetail) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Get a researcher's profile: affiliations, metrics, homepage, ORCID and DBLP."),
		mcp.WithString("author_id", mcp.Required(), mcp.Description("Author ID")),
	)
}

func (t *AuthorDetail) Run(ctx context.Context, args Args) (string, error) {
	id := args.String("author_id")
	if id == "" {
		return "", fail("Error: Author ID is required")
	}

	a, err := t.client.Author(ctx, id, authorDetailFields)
	if err != nil {
		return "", apiFailure(err, authorNotFound(id))
	}
	return render.AuthorDetail(a, id), nil
}

// AuthorPapers implements author_papers.
type AuthorPapers struct {
	client *scholar.Client
}

// NewAuthorPapers creates an AuthorPapers tool.
func NewAuthorPapers(c *scholar.Client) *AuthorPapers { return &AuthorPapers{client: c} }

func (t *AuthorPapers) Name() string { return "author_papers" }

func (t *AuthorPapers) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("List papers written by an author."),
		mcp.WithString("author_id", mcp.Required(), mcp.Description("Author ID")),
		mcp.WithNumber("limit", mcp.Description("Number of papers (default 20, max 100)"), mcp.DefaultNumber(20), mcp.Min(1), mcp.Max(100)),
	)
}

func (t *AuthorPapers) Run(ctx context.Context, args Args) (string, error) {
	id := args.String("author_id")
	if id == "" {
		return "", fail("Error: Author ID is required")
	}
	limit := args.limit("limit", 20, 1, 100)

	page, err := t.client.AuthorPapers(ctx, id, limit, authorPaperFields)
	if err != nil {
		return "", apiFailure(err, authorNotFound(id))
	}
	return render.AuthorPapers(id, page), nil
}
