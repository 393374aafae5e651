// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"strconv"
	"strings"
)

// Paper is a paper record as returned by the graph API. Which fields are
// populated depends on the fields list sent with the request.
type Paper struct {
	PaperID          string         `json:"paperId"`
	Title            string         `json:"title"`
	Abstract         string         `json:"abstract"`
	Year             int            `json:"year"`
	Venue            string         `json:"venue"`
	PublicationDate  string         `json:"publicationDate"`
	CitationCount    int            `json:"citationCount"`
	ReferenceCount   int            `json:"referenceCount"`
	Authors          []Author       `json:"authors"`
	ExternalIDs      ExternalIDs    `json:"externalIds"`
	OpenAccessPDF    *OpenAccessPDF `json:"openAccessPdf"`
	TLDR             *TLDR          `json:"tldr"`
	FieldsOfStudy    []string       `json:"fieldsOfStudy"`
	PublicationTypes []string       `json:"publicationTypes"`

	// Citations and References are only present when the request asked
	// for nested fields such as "citations.title".
	Citations  []Paper `json:"citations"`
	References []Paper `json:"references"`
}

// PDFURL returns the open-access PDF link, or "" when none is known.
func (p Paper) PDFURL() string {
	if p.OpenAccessPDF == nil {
		return ""
	}
	return p.OpenAccessPDF.URL
}

// Summary returns the TL;DR text, or "".
func (p Paper) Summary() string {
	if p.TLDR == nil {
		return ""
	}
	return p.TLDR.Text
}

// Author is an author record. Search results embedded in papers only carry
// AuthorID and Name.
type Author struct {
	AuthorID      string      `json:"authorId"`
	Name          string      `json:"name"`
	Affiliations  []string    `json:"affiliations"`
	Homepage      string      `json:"homepage"`
	PaperCount    int         `json:"paperCount"`
	CitationCount int         `json:"citationCount"`
	HIndex        int         `json:"hIndex"`
	ExternalIDs   ExternalIDs `json:"externalIds"`
}

// ExternalIDs maps identifier schemes (DOI, ArXiv, ORCID, DBLP, CorpusId,
// ...) to values. Values are strings, numbers, or for some author schemes
// lists of strings, so they are kept loosely typed.
type ExternalIDs map[string]any

// Get returns the identifier for scheme formatted as text, or "".
func (ids ExternalIDs) Get(scheme string) string {
	v, ok := ids[scheme]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

// OpenAccessPDF describes a freely available PDF for a paper.
type OpenAccessPDF struct {
	URL    string `json:"url"`
	Status string `json:"status"`
}

// TLDR is the machine-generated one-sentence summary of a paper.
type TLDR struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

// PaperPage is a page of papers from a search or author-papers listing.
type PaperPage struct {
	Total  int     `json:"total"`
	Offset int     `json:"offset"`
	Next   int     `json:"next"`
	Data   []Paper `json:"data"`
}

// AuthorPage is a page of author search results.
type AuthorPage struct {
	Total  int      `json:"total"`
	Offset int      `json:"offset"`
	Next   int      `json:"next"`
	Data   []Author `json:"data"`
}

// Citation wraps a paper that cites the requested paper.
type Citation struct {
	CitingPaper Paper `json:"citingPaper"`
}

// CitationPage is a page of citing papers.
type CitationPage struct {
	Offset int        `json:"offset"`
	Next   int        `json:"next"`
	Data   []Citation `json:"data"`
}

// Reference wraps a paper cited by the requested paper.
type Reference struct {
	CitedPaper Paper `json:"citedPaper"`
}

// ReferencePage is a page of referenced papers.
type ReferencePage struct {
	Offset int         `json:"offset"`
	Next   int         `json:"next"`
	Data   []Reference `json:"data"`
}

type recommendationResponse struct {
	RecommendedPapers []Paper `json:"recommendedPapers"`
}

// PaperSearch holds the parameters of a relevance search.
type PaperSearch struct {
	Query string
	Limit int

	// Year is a year or range such as "2019", "2016-2020" or "2010-".
	Year string

	// FieldsOfStudy is a comma-separated list such as "Computer Science,Physics".
	FieldsOfStudy string

	// OpenAccessOnly restricts results to papers with a public PDF.
	OpenAccessOnly bool
}
