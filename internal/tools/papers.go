// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pdiddy/scholar-tools/internal/render"
	"github.com/pdiddy/scholar-tools/internal/scholar"
)

// Field lists requested per tool.
const (
	searchFields = "paperId,title,authors,year,abstract,citationCount,openAccessPdf,venue,publicationDate,externalIds"
	detailFields = "paperId,title,authors,year,abstract,citationCount,referenceCount,openAccessPdf,venue,publicationDate,externalIds,tldr,fieldsOfStudy,publicationTypes"

	detailCitationFields  = ",citations.paperId,citations.title,citations.year,citations.citationCount"
	detailReferenceFields = ",references.paperId,references.title,references.year"

	linkedFields         = "paperId,title,authors,year,citationCount,venue"
	recommendationFields = "paperId,title,authors,year,citationCount,venue,abstract,openAccessPdf"
)

// titleSearchLimit is the number of candidates fetched for a title lookup.
const titleSearchLimit = 5

func paperNotFound(id string) string {
	return "Paper not found with ID: " + id
}

// PaperSearch implements paper_search.
type PaperSearch struct {
	client *scholar.Client
}

// NewPaperSearch creates a PaperSearch tool.
func NewPaperSearch(c *scholar.Client) *PaperSearch { return &PaperSearch{client: c} }

func (t *PaperSearch) Name() string { return "paper_search" }

func (t *PaperSearch) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Search academic papers by keywords or natural language. Returns titles, authors, year, citations, abstract and open-access PDF links."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
		mcp.WithNumber("limit", mcp.Description("Number of results (default 10, max 100)"), mcp.DefaultNumber(10), mcp.Min(1), mcp.Max(100)),
		mcp.WithString("year", mcp.Description("Year or range, e.g. 2020, 2018-2022, 2015-")),
		mcp.WithString("fields_of_study", mcp.Description("Comma-separated fields, e.g. Computer Science,Medicine")),
		mcp.WithBoolean("open_access_only", mcp.Description("Only return papers with a public PDF")),
	)
}

func (t *PaperSearch) Run(ctx context.Context, args Args) (string, error) {
	query := args.String("query")
	if query == "" {
		return "", fail("Error: Search query is required")
	}
	search := scholar.PaperSearch{
		Query:          query,
		Limit:          args.limit("limit", 10, 1, 100),
		Year:           args.String("year"),
		FieldsOfStudy:  args.String("fields_of_study"),
		OpenAccessOnly: args.Bool("open_access_only"),
	}

	page, err := t.client.SearchPapers(ctx, search, searchFields)
	if err != nil {
		return "", apiFailure(err, "")
	}
	return render.SearchResults(query, page), nil
}

// TitleSearch implements paper_title_search.
type TitleSearch struct {
	client *scholar.Client
}

// NewTitleSearch creates a TitleSearch tool.
func NewTitleSearch(c *scholar.Client) *TitleSearch { return &TitleSearch{client: c} }

func (t *TitleSearch) Name() string { return "paper_title_search" }

func (t *TitleSearch) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Find a paper by its exact or approximate title. Returns the best match in detail plus other candidates."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Paper title")),
		mcp.WithNumber("year", mcp.Description("Publication year to narrow the match")),
	)
}

func (t *TitleSearch) Run(ctx context.Context, args Args) (string, error) {
	title := args.String("title")
	if title == "" {
		return "", fail("Error: Paper title is required")
	}
	search := scholar.PaperSearch{Query: title, Limit: titleSearchLimit}
	if y := args.Int("year", 0); y > 0 {
		search.Year = strconv.Itoa(y)
	}

	page, err := t.client.SearchPapers(ctx, search, searchFields)
	if err != nil {
		return "", apiFailure(err, "")
	}
	return render.TitleMatch(title, page.Data), nil
}

// PaperDetail implements paper_detail.
type PaperDetail struct {
	client *scholar.Client
}

// NewPaperDetail creates a PaperDetail tool.
func NewPaperDetail(c *scholar.Client) *PaperDetail { return &PaperDetail{client: c} }

func (t *PaperDetail) Name() string { return "paper_detail" }

func (t *PaperDetail) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Get full details of a paper: abstract, TL;DR, identifiers, fields of study and optionally its citations and references."),
		mcp.WithString("paper_id", mcp.Required(), mcp.Description("Paper ID, or DOI:..., ARXIV:..., CorpusId:...")),
		mcp.WithBoolean("include_citations", mcp.Description("Include up to 10 citing papers")),
		mcp.WithBoolean("include_references", mcp.Description("Include up to 10 referenced papers")),
		mcp.WithString("format", mcp.Description("Output format"), mcp.Enum("markdown", "bibtex", "csl"), mcp.DefaultString("markdown")),
	)
}

func (t *PaperDetail) Run(ctx context.Context, args Args) (string, error) {
	id := args.String("paper_id")
	if id == "" {
		return "", fail("Error: Paper ID is required")
	}
	withCitations := args.Bool("include_citations")
	withReferences := args.Bool("include_references")
	format := strings.ToLower(args.String("format"))
	citation := format == "bibtex" || format == "csl"

	fields := detailFields
	if withCitations && !citation {
		fields += detailCitationFields
	}
	if withReferences && !citation {
		fields += detailReferenceFields
	}

	p, err := t.client.Paper(ctx, id, fields)
	if err != nil {
		return "", apiFailure(err, paperNotFound(id))
	}
	switch format {
	case "bibtex":
		return render.BibTeX(p), nil
	case "csl":
		out, err := render.CSL(p)
		if err != nil {
			return "", &Failure{Message: "Error: " + err.Error(), Err: err}
		}
		return out, nil
	}
	return render.PaperDetail(p, id, withCitations, withReferences), nil
}

// Citations implements paper_citations.
type Citations struct {
	client *scholar.Client
}

// NewCitations creates a Citations tool.
func NewCitations(c *scholar.Client) *Citations { return &Citations{client: c} }

func (t *Citations) Name() string { return "paper_citations" }

func (t *Citations) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("List papers that cite a given paper."),
		mcp.WithString("paper_id", mcp.Required(), mcp.Description("Paper ID")),
		mcp.WithNumber("limit", mcp.Description("Number of citations (default 20, max 100)"), mcp.DefaultNumber(20), mcp.Min(1), mcp.Max(100)),
	)
}

func (t *Citations) Run(ctx context.Context, args Args) (string, error) {
	id := args.String("paper_id")
	if id == "" {
		return "", fail("Error: Paper ID is required")
	}
	limit := args.limit("limit", 20, 1, 100)

	page, err := t.client.Citations(ctx, id, limit, linkedFields)
	if err != nil {
		return "", apiFailure(err, paperNotFound(id))
	}
	return render.Citations(id, page), nil
}

// References implements paper_references.
type References struct {
	client *scholar.Client
}

// NewReferences creates a References tool.
func NewReferences(c *scholar.Client) *References { return &References{client: c} }

func (t *References) Name() string { return "paper_references" }

func (t *References) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("List papers referenced by a given paper."),
		mcp.WithString("paper_id", mcp.Required(), mcp.Description("Paper ID")),
		mcp.WithNumber("limit", mcp.Description("Number of references (default 20, max 100)"), mcp.DefaultNumber(20), mcp.Min(1), mcp.Max(100)),
	)
}

func (t *References) Run(ctx context.Context, args Args) (string, error) {
	id := args.String("paper_id")
	if id == "" {
		return "", fail("Error: Paper ID is required")
	}
	limit := args.limit("limit", 20, 1, 100)

	page, err := t.client.References(ctx, id, limit, linkedFields)
	if err != nil {
		return "", apiFailure(err, paperNotFound(id))
	}
	return render.References(id, page), nil
}

// Recommendations implements paper_recommendations.
type Recommendations struct {
	client *scholar.Client
}

// NewRecommendations creates a Recommendations tool.
func NewRecommendations(c *scholar.Client) *Recommendations { return &Recommendations{client: c} }

func (t *Recommendations) Name() string { return "paper_recommendations" }

func (t *Recommendations) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Recommend papers similar to a given paper."),
		mcp.WithString("paper_id", mcp.Required(), mcp.Description("Seed paper ID")),
		mcp.WithNumber("limit", mcp.Description("Number of recommendations (default 10, max 100)"), mcp.DefaultNumber(10), mcp.Min(1), mcp.Max(100)),
	)
}

func (t *Recommendations) Run(ctx context.Context, args Args) (string, error) {
	id := args.String("paper_id")
	if id == "" {
		return "", fail("Error: Paper ID is required")
	}
	limit := args.limit("limit", 10, 1, 100)

	papers, err := t.client.Recommendations(ctx, id, limit, recommendationFields)
	if err != nil {
		return "", apiFailure(err, "Paper not found or no recommendations available for: "+id)
	}
	return render.Recommendations(id, papers), nil
}
