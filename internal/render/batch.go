// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/scholar-tools/internal/scholar"
)

// BulkTruncatedNote precedes bulk results when queries were dropped.
const BulkTruncatedNote = "Note: Limited to first 10 queries\n"

// MultiHeader opens a multi-paper detail report.
func MultiHeader(n int) string {
	return fmt.Sprintf("# Multiple Papers Detail\n**Requesting:** %d papers\n", n)
}

// MultiPaper renders entry i (1-based) of a multi-paper report. Exactly
// one of p and err is non-nil.
func MultiPaper(i int, requestedID string, p *scholar.Paper, err error) string {
	var d doc
	if err != nil {
		switch {
		case errors.Is(err, scholar.ErrNotFound):
			d.add("\n## Paper %d: Not Found", i)
			d.add("ID: %s", requestedID)
		case scholar.StatusCode(err) != 0:
			d.add("\n## Paper %d: Error", i)
			d.add("API returned status %d", scholar.StatusCode(err))
		case scholar.IsTimeout(err):
			d.add("\n## Paper %d: Timeout", i)
			d.add("ID: %s", requestedID)
		default:
			d.add("\n## Paper %d: Error", i)
			d.add("Error: %s", err.Error())
		}
		return d.String()
	}

	d.add("\n---\n## %d. %s", i, orNA(p.Title))
	d.add("**Authors:** %s", Authors(p.Authors, 5))
	d.add("**Year:** %s | **Citations:** %d", year(p.Year), p.CitationCount)
	if p.Venue != "" {
		d.add("**Venue:** %s", p.Venue)
	}
	identifiers(&d, p.ExternalIDs, false)
	if tldr := p.Summary(); tldr != "" {
		d.add("**TL;DR:** %s", tldr)
	} else if p.Abstract != "" {
		d.add("**Abstract:** %s", Truncate(p.Abstract, ListAbstractChars))
	}
	if url := p.PDFURL(); url != "" {
		d.add("**PDF:** %s", url)
	}
	d.add("**Paper ID:** %s", firstNonEmpty(p.PaperID, requestedID))
	return d.String()
}

// BulkHeader opens a bulk search report.
func BulkHeader(queries, limit int) string {
	return fmt.Sprintf("# Bulk Search Results\n**Queries:** %d | **Results per query:** %d\n", queries, limit)
}

// BulkQuery renders the section for query i (1-based). Exactly one of
// page and err is non-nil.
func BulkQuery(i int, query string, page *scholar.PaperPage, err error) string {
	var d doc
	d.add("\n## Query %d: \"%s\"", i, query)

	if err != nil {
		switch {
		case scholar.StatusCode(err) != 0:
			d.add("Error: API returned status %d", scholar.StatusCode(err))
		case scholar.IsTimeout(err):
			d.add("Error: Request timeout")
		default:
			d.add("Error: %s", err.Error())
		}
		return d.String()
	}

	d.add("Found %d papers (showing %d)\n", page.Total, len(page.Data))
	if len(page.Data) == 0 {
		d.add("No papers found.")
		return d.String()
	}
	for j, p := range page.Data {
		d.add("%d. %s", j+1, titled(p, "**"+orNA(p.Title)+"**"))
		d.add("   %s (%s) | Citations: %d", Authors(p.Authors, 2), year(p.Year), p.CitationCount)
		d.add("   ID: %s", p.PaperID)
		d.blank()
	}
	return d.String()
}

// Join assembles report sections produced by the functions above.
func Join(sections []string) string {
	return strings.Join(sections, "\n")
}
