// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nickng/bibtex"

	"github.com/pdiddy/scholar-tools/internal/scholar"
)

// BibTeX renders a paper as a single BibTeX entry.
func BibTeX(p *scholar.Paper) string {
	entry := bibtex.NewBibEntry(bibType(p), citeKey(p))

	addField := func(name, value string) {
		if value != "" {
			entry.AddField(name, bibtex.NewBibConst(balanceBraces(value)))
		}
	}

	names := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		names = append(names, a.Name)
	}

	addField("title", p.Title)
	addField("author", strings.Join(names, " and "))
	if p.Year > 0 {
		addField("year", strconv.Itoa(p.Year))
	}
	switch entry.Type {
	case "inproceedings":
		addField("booktitle", p.Venue)
	case "article":
		addField("journal", p.Venue)
	default:
		addField("howpublished", p.Venue)
	}
	addField("doi", p.ExternalIDs.Get("DOI"))
	if arxiv := p.ExternalIDs.Get("ArXiv"); arxiv != "" {
		addField("eprint", arxiv)
		addField("archiveprefix", "arXiv")
	}
	addField("url", p.PDFURL())

	bib := bibtex.NewBibTex()
	bib.AddEntry(entry)
	return bib.PrettyString()
}

// balanceBraces drops unmatched braces so a value stays a single braced
// group. Matched pairs such as "{BERT}" are kept.
func balanceBraces(s string) string {
	if !strings.ContainsAny(s, "{}") {
		return s
	}
	drop := map[int]bool{}
	var open []int
	for i, r := range s {
		switch r {
		case '{':
			open = append(open, i)
		case '}':
			if len(open) == 0 {
				drop[i] = true
			} else {
				open = open[:len(open)-1]
			}
		}
	}
	for _, i := range open {
		drop[i] = true
	}
	var b strings.Builder
	for i, r := range s {
		if !drop[i] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func bibType(p *scholar.Paper) string {
	for _, t := range p.PublicationTypes {
		switch t {
		case "Conference":
			return "inproceedings"
		case "JournalArticle", "Review":
			return "article"
		case "Book":
			return "book"
		}
	}
	if p.Venue != "" {
		return "article"
	}
	return "misc"
}

// citeKey builds "<surname><year><firstword>", e.g. "vaswani2017attention".
// Falls back to the paper ID when no part is available.
func citeKey(p *scholar.Paper) string {
	var b strings.Builder
	if len(p.Authors) > 0 {
		fields := strings.Fields(p.Authors[0].Name)
		if len(fields) > 0 {
			b.WriteString(keyPart(fields[len(fields)-1]))
		}
	}
	if p.Year > 0 {
		b.WriteString(strconv.Itoa(p.Year))
	}
	for _, w := range strings.Fields(p.Title) {
		if part := keyPart(w); len(part) > 3 {
			b.WriteString(part)
			break
		}
	}
	if b.Len() == 0 {
		return keyPart(p.PaperID)
	}
	return b.String()
}

func keyPart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
