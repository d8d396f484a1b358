// Package report renders accumulated diff statistics as terminal text,
// a bordered table, or JSON. Rendering never mutates the accumulators.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/Sumatoshi-tech/diffloc/pkg/diffstat"
)

// Format selects the output renderer.
type Format string

// Supported output formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ErrUnknownFormat is returned for formats outside the supported set.
var ErrUnknownFormat = errors.New("unknown output format")

// commentsRowName labels the aggregated comment row.
const commentsRowName = "Comments"

// Row is one line of the report: a display name plus the six counter
// fields.
type Row struct {
	Name        string `json:"name"`
	Total       int    `json:"total"`
	Added       int    `json:"added"`
	Removed     int    `json:"removed"`
	TestTotal   int    `json:"test_total"`
	TestAdded   int    `json:"test_added"`
	TestRemoved int    `json:"test_removed"`

	comments bool
}

// Renderer writes a report in the configured format.
type Renderer struct {
	Format  Format
	NoColor bool
}

// Render writes the report for result to w.
func (r Renderer) Render(w io.Writer, result *diffstat.Result) error {
	rows := buildRows(result)

	switch r.Format {
	case FormatText:
		return r.renderText(w, rows, result.GrandTotal())
	case FormatTable:
		return r.renderTable(w, rows, result.GrandTotal())
	case FormatJSON:
		return r.renderJSON(w, rows, result.GrandTotal())
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, r.Format)
}

// ParseFormat validates a format string from flags or config.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatTable, FormatJSON:
		return Format(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// buildRows flattens the accumulators into display order: the Comments
// row first when it has anything to say, then languages sorted by
// display name. Rows with all-zero totals are skipped.
func buildRows(result *diffstat.Result) []Row {
	rows := make([]Row, 0, len(result.Code)+1)

	if result.Comments.Total() > 0 || result.Comments.TestTotal() > 0 {
		rows = append(rows, statsRow(commentsRowName, result.Comments, true))
	}

	langRows := make([]Row, 0, len(result.Code))
	for language, stats := range result.Code {
		if stats.Total() == 0 && stats.TestTotal() == 0 {
			continue
		}

		langRows = append(langRows, statsRow(language.String(), *stats, false))
	}

	sort.Slice(langRows, func(i, j int) bool {
		return langRows[i].Name < langRows[j].Name
	})

	return append(rows, langRows...)
}

func statsRow(name string, s diffstat.Stats, comments bool) Row {
	return Row{
		Name:        name,
		Total:       s.Total(),
		Added:       s.Added,
		Removed:     s.Removed,
		TestTotal:   s.TestTotal(),
		TestAdded:   s.TestAdded,
		TestRemoved: s.TestRemoved,
		comments:    comments,
	}
}
