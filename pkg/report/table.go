package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable writes the row set as a bordered go-pretty table with a
// grand-total footer.
func (r Renderer) renderTable(w io.Writer, rows []Row, grandTotal int) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(reportTitle)

	if r.NoColor {
		tw.SetStyle(table.StyleLight)
	} else {
		tw.SetStyle(table.StyleColoredBright)
	}

	tw.AppendHeader(table.Row{"Name", "Total", "Added", "Removed", "Test Total", "Test Added", "Test Removed"})

	for _, row := range rows {
		tw.AppendRow(table.Row{
			row.Name,
			row.Total,
			row.Added,
			row.Removed,
			row.TestTotal,
			row.TestAdded,
			row.TestRemoved,
		})
	}

	if grandTotal > 0 {
		tw.AppendFooter(table.Row{totalChangesLabel, grandTotal})
	}

	tw.Render()

	return nil
}
