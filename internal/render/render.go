// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns graph API records into the Markdown text returned by
// each tool. Functions here are pure: no I/O, no API calls.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/scholar-tools/internal/scholar"
)

const (
	notAvailable = "N/A"
	pdfMarker    = "📄"
)

// doc accumulates output lines joined with "\n".
type doc struct {
	lines []string
}

func (d *doc) add(format string, args ...any) {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
}

func (d *doc) blank() {
	d.lines = append(d.lines, "")
}

func (d *doc) String() string {
	return strings.Join(d.lines, "\n")
}

// Authors joins author names with ", ". When max > 0 and there are more
// than max authors, only the first max are listed followed by " et al.".
func Authors(authors []scholar.Author, max int) string {
	shown := authors
	if max > 0 && len(authors) > max {
		shown = authors[:max]
	}
	names := make([]string, len(shown))
	for i, a := range shown {
		names[i] = a.Name
	}
	s := strings.Join(names, ", ")
	if max > 0 && len(authors) > max {
		s += " et al."
	}
	return s
}

// Truncate shortens s to n characters and appends "..." when it was longer.
// Counting is by rune so multi-byte text is never split.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func year(y int) string {
	if y == 0 {
		return notAvailable
	}
	return strconv.Itoa(y)
}

// titled prefixes the open-access marker when the paper has a public PDF.
func titled(p scholar.Paper, title string) string {
	if p.OpenAccessPDF != nil {
		return pdfMarker + " " + title
	}
	return title
}

func affiliations(a []string) string {
	if len(a) == 0 {
		return notAvailable
	}
	return strings.Join(a, ", ")
}
