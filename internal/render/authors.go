// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/pdiddy/scholar-tools/internal/scholar"

// AuthorSearch renders author search results.
func AuthorSearch(query string, page *scholar.AuthorPage) string {
	if len(page.Data) == 0 {
		return "No authors found for: " + query
	}

	var d doc
	d.add("# Author Search Results\n**Query:** \"%s\" | **Found:** %d authors (showing %d)\n", query, page.Total, len(page.Data))
	for i, a := range page.Data {
		d.add("## %d. %s", i+1, orNA(a.Name))
		d.add("**Affiliations:** %s", affiliations(a.Affiliations))
		d.add("**Papers:** %d | **Citations:** %d | **h-index:** %d", a.PaperCount, a.CitationCount, a.HIndex)
		d.add("**Author ID:** %s", orNA(a.AuthorID))
		d.blank()
	}
	return d.String()
}

// AuthorDetail renders an author profile. requestedID is shown when the
// response carries no authorId.
func AuthorDetail(a *scholar.Author, requestedID string) string {
	var d doc
	d.add("# %s", orNA(a.Name))
	d.add("\n**Affiliations:** %s", affiliations(a.Affiliations))
	d.add("**Papers:** %d | **Citations:** %d | **h-index:** %d", a.PaperCount, a.CitationCount, a.HIndex)

	if a.Homepage != "" {
		d.add("**Homepage:** %s", a.Homepage)
	}
	if orcid := a.ExternalIDs.Get("ORCID"); orcid != "" {
		d.add("**ORCID:** %s", orcid)
	}
	if dblp := a.ExternalIDs.Get("DBLP"); dblp != "" {
		d.add("**DBLP:** %s", dblp)
	}

	d.add("\n**Author ID:** %s", firstNonEmpty(a.AuthorID, requestedID))
	return d.String()
}
