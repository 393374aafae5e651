// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.yaml.in/yaml/v3"
)

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// summaryWidth bounds the summary column in table output.
const summaryWidth = 60

// CheckFormat reports whether format is a supported export format.
func CheckFormat(format string) error {
	switch format {
	case FormatYAML, "yml", FormatJSON:
		return nil
	}
	return fmt.Errorf("unknown export format %q (want yaml or json)", format)
}

// Export writes entries to w as YAML or JSON.
func Export(w io.Writer, entries []Entry, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	if entries == nil {
		entries = []Entry{}
	}
	switch format {
	case FormatYAML, "yml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("unknown export format %q (want yaml or json)", format)
	}
}

// RenderTable writes entries to w as a table.
func RenderTable(w io.Writer, entries []Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Time", "Tool", "OK", "ms", "Summary"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Tool,
			strconv.FormatBool(e.OK),
			e.DurationMS,
			truncate(e.Summary, summaryWidth),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d entries", len(entries))})
	t.Render()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
