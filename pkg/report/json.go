package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// jsonReport is the stable wire shape for --format json.
type jsonReport struct {
	Rows         []Row `json:"rows"`
	TotalChanges int   `json:"total_changes"`
}

// renderJSON writes the row set as an indented JSON document. Row order
// matches the text report, so output is deterministic.
func (r Renderer) renderJSON(w io.Writer, rows []Row, grandTotal int) error {
	doc := jsonReport{Rows: rows, TotalChanges: grandTotal}
	if doc.Rows == nil {
		doc.Rows = []Row{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render json: %w", err)
	}

	return nil
}
