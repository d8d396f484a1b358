package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const reportTitle = "Lines of Code Changes"

// columnWidths carries the computed width of the name column and each
// of the six numeric columns.
type columnWidths struct {
	name        int
	total       int
	added       int
	removed     int
	testTotal   int
	testAdded   int
	testRemoved int
}

// renderText writes the default aligned layout:
//
//	name  total (+ added / - removed)  |  test (+ added / - removed)
//
// Numbers are right-justified, names left-justified, all widths
// computed over the full row set. Colors are applied after padding so
// escape sequences never disturb alignment.
func (r Renderer) renderText(w io.Writer, rows []Row, grandTotal int) error {
	styles := newTextStyles(r.NoColor)

	if _, err := fmt.Fprintf(w, "\n%s\n\n", styles.title.Sprint(reportTitle)); err != nil {
		return fmt.Errorf("render text: %w", err)
	}

	widths := measure(rows)

	separatorWidth := 0

	for _, row := range rows {
		plain := formatRow(row, widths)
		if width := runewidth.StringWidth(plain); width > separatorWidth {
			separatorWidth = width
		}

		if _, err := fmt.Fprintln(w, colorRow(row, widths, styles)); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}

	if grandTotal == 0 {
		return nil
	}

	label := pad(totalChangesLabel, widths.name)
	value := fmt.Sprintf("%*d", widths.total, grandTotal)

	if _, err := fmt.Fprintf(w, "\n%s\n%s  %s\n",
		styles.separator.Sprint(strings.Repeat("─", separatorWidth)),
		styles.totalLabel.Sprint(label),
		styles.total.Sprint(value),
	); err != nil {
		return fmt.Errorf("render text: %w", err)
	}

	return nil
}

const totalChangesLabel = "Total changes"

type textStyles struct {
	title      *color.Color
	name       *color.Color
	comments   *color.Color
	total      *color.Color
	added      *color.Color
	removed    *color.Color
	testTotal  *color.Color
	testAdded  *color.Color
	testRemove *color.Color
	separator  *color.Color
	totalLabel *color.Color
}

func newTextStyles(noColor bool) textStyles {
	s := textStyles{
		title:      color.New(color.Bold, color.Underline),
		name:       color.New(color.FgCyan, color.Bold),
		comments:   color.New(color.FgMagenta, color.Bold),
		total:      color.New(color.FgYellow, color.Bold),
		added:      color.New(color.FgGreen),
		removed:    color.New(color.FgRed),
		testTotal:  color.New(color.FgHiYellow),
		testAdded:  color.New(color.FgHiGreen),
		testRemove: color.New(color.FgHiRed),
		separator:  color.New(color.FgHiBlack),
		totalLabel: color.New(color.FgWhite, color.Bold),
	}

	if noColor {
		for _, c := range []*color.Color{
			s.title, s.name, s.comments, s.total, s.added, s.removed,
			s.testTotal, s.testAdded, s.testRemove, s.separator, s.totalLabel,
		} {
			c.DisableColor()
		}
	}

	return s
}

// measure computes per-column widths as the maximum formatted width
// across all rows.
func measure(rows []Row) columnWidths {
	var widths columnWidths

	for _, row := range rows {
		widths.name = maxInt(widths.name, runewidth.StringWidth(row.Name))
		widths.total = maxInt(widths.total, digits(row.Total))
		widths.added = maxInt(widths.added, digits(row.Added))
		widths.removed = maxInt(widths.removed, digits(row.Removed))
		widths.testTotal = maxInt(widths.testTotal, digits(row.TestTotal))
		widths.testAdded = maxInt(widths.testAdded, digits(row.TestAdded))
		widths.testRemoved = maxInt(widths.testRemoved, digits(row.TestRemoved))
	}

	return widths
}

func formatRow(row Row, w columnWidths) string {
	return fmt.Sprintf("%s  %*d (+ %*d / - %*d)  |  %*d (+ %*d / - %*d)",
		pad(row.Name, w.name),
		w.total, row.Total,
		w.added, row.Added,
		w.removed, row.Removed,
		w.testTotal, row.TestTotal,
		w.testAdded, row.TestAdded,
		w.testRemoved, row.TestRemoved,
	)
}

func colorRow(row Row, w columnWidths, styles textStyles) string {
	nameStyle := styles.name
	if row.comments {
		nameStyle = styles.comments
	}

	return fmt.Sprintf("%s  %s (%s / %s)  |  %s (%s / %s)",
		nameStyle.Sprint(pad(row.Name, w.name)),
		styles.total.Sprintf("%*d", w.total, row.Total),
		styles.added.Sprintf("+ %*d", w.added, row.Added),
		styles.removed.Sprintf("- %*d", w.removed, row.Removed),
		styles.testTotal.Sprintf("%*d", w.testTotal, row.TestTotal),
		styles.testAdded.Sprintf("+ %*d", w.testAdded, row.TestAdded),
		styles.testRemove.Sprintf("- %*d", w.testRemoved, row.TestRemoved),
	)
}

// pad left-justifies s to width using display cells, not bytes.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}

func digits(n int) int {
	return len(strconv.Itoa(n))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
