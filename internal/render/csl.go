// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-tools/internal/scholar"
)

// CSLItem is a bibliographic entry in CSL (Citation Style Language) form.
// Field names follow the CSL-JSON/CSL-YAML schema so output is consumable by
// Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName is a person's name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// CSL renders papers as a CSL-YAML list.
func CSL(papers ...*scholar.Paper) (string, error) {
	items := make([]CSLItem, len(papers))
	for i, p := range papers {
		items[i] = toCSLItem(p)
	}
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return "", fmt.Errorf("encoding CSL: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding CSL: %w", err)
	}
	return b.String(), nil
}

func toCSLItem(p *scholar.Paper) CSLItem {
	item := CSLItem{
		ID:             citeKey(p),
		Type:           cslType(p),
		Title:          p.Title,
		ContainerTitle: p.Venue,
		Abstract:       p.Abstract,
		DOI:            p.ExternalIDs.Get("DOI"),
		URL:            p.PDFURL(),
	}
	for _, a := range p.Authors {
		item.Author = append(item.Author, parseAuthorName(a.Name))
	}

	if d, err := time.Parse(time.DateOnly, p.PublicationDate); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{d.Year(), int(d.Month()), d.Day()}}}
	} else if p.Year > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{p.Year}}}
	}
	return item
}

func cslType(p *scholar.Paper) string {
	switch bibType(p) {
	case "inproceedings":
		return "paper-conference"
	case "book":
		return "book"
	case "article":
		return "article-journal"
	default:
		return "article"
	}
}

// parseAuthorName splits a full name into CSL family/given parts on the last
// space. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
