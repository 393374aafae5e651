// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/pdiddy/scholar-tools/internal/scholar"
)

// Abstract limits for list views. Detail views show the full abstract.
const (
	ListAbstractChars           = 300
	RecommendationAbstractChars = 200

	// NestedListMax caps citations/references embedded in a paper detail.
	NestedListMax = 10
)

// SearchResults renders a relevance search.
func SearchResults(query string, page *scholar.PaperPage) string {
	if len(page.Data) == 0 {
		return "No papers found for query: " + query
	}

	var d doc
	d.add("Found %d papers for query: \"%s\" (showing %d)\n", page.Total, query, len(page.Data))
	for i, p := range page.Data {
		d.add("### %d. %s", i+1, orNA(p.Title))
		d.add("**Authors:** %s", Authors(p.Authors, 3))
		d.add("**Year:** %s | **Citations:** %d", year(p.Year), p.CitationCount)
		if p.Venue != "" {
			d.add("**Venue:** %s", p.Venue)
		}
		if p.Abstract != "" {
			d.add("**Abstract:** %s", Truncate(p.Abstract, ListAbstractChars))
		}
		if url := p.PDFURL(); url != "" {
			d.add("**PDF:** %s", url)
		}
		d.add("**Paper ID:** %s", orNA(p.PaperID))
		d.blank()
	}
	return d.String()
}

// TitleMatch renders the best match of a title search followed by the
// runner-up candidates.
func TitleMatch(title string, papers []scholar.Paper) string {
	if len(papers) == 0 {
		return "No papers found with title: " + title
	}

	best := papers[0]
	var d doc
	d.add("Found paper matching title: \"%s\"\n", title)
	d.add("## %s", orNA(best.Title))
	d.add("**Authors:** %s", Authors(best.Authors, 0))
	d.add("**Year:** %s | **Citations:** %d", year(best.Year), best.CitationCount)
	if best.Venue != "" {
		d.add("**Venue:** %s", best.Venue)
	}
	identifiers(&d, best.ExternalIDs, true)
	if best.Abstract != "" {
		d.add("\n**Abstract:**\n%s", best.Abstract)
	}
	if url := best.PDFURL(); url != "" {
		d.add("\n**PDF:** %s", url)
	}
	d.add("\n**Paper ID:** %s", orNA(best.PaperID))

	if len(papers) > 1 {
		d.add("\n---\n**Other possible matches:**")
		for _, p := range papers[1:] {
			d.add("- %s (%s)", orNA(p.Title), year(p.Year))
		}
	}
	return d.String()
}

// PaperDetail renders a full paper record. requestedID is shown when the
// response carries no paperId. Nested citation/reference sections appear
// only when the caller asked for them.
func PaperDetail(p *scholar.Paper, requestedID string, withCitations, withReferences bool) string {
	var d doc
	d.add("# %s", orNA(p.Title))
	d.add("\n**Authors:** %s", Authors(p.Authors, 0))
	d.add("**Year:** %s | **Citations:** %d | **References:** %d", year(p.Year), p.CitationCount, p.ReferenceCount)

	if p.Venue != "" {
		d.add("**Venue:** %s", p.Venue)
	}
	if len(p.FieldsOfStudy) > 0 {
		d.add("**Fields:** %s", strings.Join(p.FieldsOfStudy, ", "))
	}
	if len(p.PublicationTypes) > 0 {
		d.add("**Type:** %s", strings.Join(p.PublicationTypes, ", "))
	}
	identifiers(&d, p.ExternalIDs, true)

	if tldr := p.Summary(); tldr != "" {
		d.add("\n**TL;DR:** %s", tldr)
	}
	if p.Abstract != "" {
		d.add("\n**Abstract:**\n%s", p.Abstract)
	}
	if url := p.PDFURL(); url != "" {
		d.add("\n**Open Access PDF:** %s", url)
	}
	d.add("\n**Paper ID:** %s", firstNonEmpty(p.PaperID, requestedID))

	if withCitations && len(p.Citations) > 0 {
		shown := head(p.Citations, NestedListMax)
		d.add("\n---\n## Recent Citations (%d shown)", len(shown))
		for _, c := range shown {
			d.add("- %s (%s, %d citations)", orNA(c.Title), year(c.Year), c.CitationCount)
		}
	}
	if withReferences && len(p.References) > 0 {
		shown := head(p.References, NestedListMax)
		d.add("\n---\n## References (%d shown)", len(shown))
		for _, r := range shown {
			d.add("- %s (%s)", orNA(r.Title), year(r.Year))
		}
	}
	return d.String()
}

// Citations renders the papers citing paperID.
func Citations(paperID string, page *scholar.CitationPage) string {
	if len(page.Data) == 0 {
		return "No citations found for paper: " + paperID
	}
	papers := make([]scholar.Paper, len(page.Data))
	for i, c := range page.Data {
		papers[i] = c.CitingPaper
	}
	return linkedPapers("# Papers Citing This Paper", paperID, "citations", papers)
}

// References renders the papers referenced by paperID.
func References(paperID string, page *scholar.ReferencePage) string {
	if len(page.Data) == 0 {
		return "No references found for paper: " + paperID
	}
	papers := make([]scholar.Paper, len(page.Data))
	for i, r := range page.Data {
		papers[i] = r.CitedPaper
	}
	return linkedPapers("# References of This Paper", paperID, "references", papers)
}

func linkedPapers(heading, paperID, noun string, papers []scholar.Paper) string {
	var d doc
	d.add("%s\n**Paper ID:** %s | **Showing:** %d %s\n", heading, paperID, len(papers), noun)
	for i, p := range papers {
		d.add("### %d. %s", i+1, orNA(p.Title))
		d.add("**Authors:** %s", Authors(p.Authors, 3))
		d.add("**Year:** %s | **Citations:** %d", year(p.Year), p.CitationCount)
		if p.Venue != "" {
			d.add("**Venue:** %s", p.Venue)
		}
		d.add("**Paper ID:** %s", p.PaperID)
		d.blank()
	}
	return d.String()
}

// Recommendations renders papers recommended for paperID.
func Recommendations(paperID string, papers []scholar.Paper) string {
	if len(papers) == 0 {
		return "No recommendations found for paper: " + paperID
	}

	var d doc
	d.add("# Paper Recommendations\n**Based on:** %s | **Found:** %d recommendations\n", paperID, len(papers))
	for i, p := range papers {
		d.add("### %d. %s", i+1, orNA(p.Title))
		d.add("**Authors:** %s", Authors(p.Authors, 3))
		d.add("**Year:** %s | **Citations:** %d", year(p.Year), p.CitationCount)
		if p.Venue != "" {
			d.add("**Venue:** %s", p.Venue)
		}
		if p.Abstract != "" {
			d.add("**Abstract:** %s", Truncate(p.Abstract, RecommendationAbstractChars))
		}
		if url := p.PDFURL(); url != "" {
			d.add("**PDF:** %s", url)
		}
		d.add("**Paper ID:** %s", p.PaperID)
		d.blank()
	}
	return d.String()
}

// AuthorPapers renders an author's publication list.
func AuthorPapers(authorID string, page *scholar.PaperPage) string {
	if len(page.Data) == 0 {
		return "No papers found for author ID: " + authorID
	}

	var d doc
	d.add("# Papers by Author\n**Author ID:** %s | **Showing:** %d papers\n", authorID, len(page.Data))
	for i, p := range page.Data {
		d.add("### %d. %s", i+1, titled(p, orNA(p.Title)))
		d.add("**Year:** %s | **Citations:** %d", year(p.Year), p.CitationCount)
		if p.Venue != "" {
			d.add("**Venue:** %s", p.Venue)
		}
		d.add("**Paper ID:** %s", p.PaperID)
		d.blank()
	}
	return d.String()
}

func identifiers(d *doc, ids scholar.ExternalIDs, withArxiv bool) {
	if doi := ids.Get("DOI"); doi != "" {
		d.add("**DOI:** %s", doi)
	}
	if !withArxiv {
		return
	}
	if arxiv := ids.Get("ArXiv"); arxiv != "" {
		d.add("**arXiv:** %s", arxiv)
	}
}

func head(papers []scholar.Paper, n int) []scholar.Paper {
	if len(papers) > n {
		return papers[:n]
	}
	return papers
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
