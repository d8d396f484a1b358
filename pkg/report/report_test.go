package report //nolint:testpackage // exercises row building internals.

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/diffloc/pkg/diffstat"
	"github.com/Sumatoshi-tech/diffloc/pkg/lang"
)

func sampleResult() *diffstat.Result {
	result := diffstat.NewResult()
	result.Code[lang.Rust] = &diffstat.Stats{Added: 10, Removed: 3, TestAdded: 2}
	result.Code[lang.Go] = &diffstat.Stats{Added: 5, Removed: 1}
	result.Code[lang.Python] = &diffstat.Stats{}
	result.Comments = diffstat.Stats{Added: 4, TestAdded: 1}

	return result
}

func TestBuildRows_OrderAndSkipping(t *testing.T) {
	t.Parallel()

	rows := buildRows(sampleResult())

	require.Len(t, rows, 3)
	assert.Equal(t, "Comments", rows[0].Name)
	assert.Equal(t, "Go", rows[1].Name)
	assert.Equal(t, "Rust", rows[2].Name)
}

func TestBuildRows_NoCommentsRowWhenZero(t *testing.T) {
	t.Parallel()

	result := diffstat.NewResult()
	result.Code[lang.Go] = &diffstat.Stats{Added: 1}

	rows := buildRows(result)

	require.Len(t, rows, 1)
	assert.Equal(t, "Go", rows[0].Name)
}

func TestRenderText_NoColorHasNoEscapes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := Renderer{Format: FormatText, NoColor: true}

	require.NoError(t, r.Render(&buf, sampleResult()))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Lines of Code Changes")
	assert.Contains(t, out, "Comments")
	assert.Contains(t, out, "Total changes")
}

func TestRenderText_SumProperty(t *testing.T) {
	t.Parallel()

	result := sampleResult()

	var buf bytes.Buffer
	r := Renderer{Format: FormatText, NoColor: true}
	require.NoError(t, r.Render(&buf, result))

	// production (10+3 + 5+1) + test (2) + comments (4 production + 1 test).
	assert.Equal(t, 26, result.GrandTotal())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, "Total changes")
	assert.Contains(t, last, "26")
}

func TestRenderText_Idempotent(t *testing.T) {
	t.Parallel()

	result := sampleResult()
	r := Renderer{Format: FormatText, NoColor: true}

	var first, second bytes.Buffer
	require.NoError(t, r.Render(&first, result))
	require.NoError(t, r.Render(&second, result))

	assert.Equal(t, first.String(), second.String())
}

func TestRenderText_DoesNotMutateResult(t *testing.T) {
	t.Parallel()

	result := sampleResult()
	before := result.GrandTotal()

	var buf bytes.Buffer
	require.NoError(t, Renderer{Format: FormatText, NoColor: true}.Render(&buf, result))

	assert.Equal(t, before, result.GrandTotal())
	assert.Equal(t, 10, result.Code[lang.Rust].Added)
}

func TestRenderText_NoTotalLineWhenEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Renderer{Format: FormatText, NoColor: true}.Render(&buf, diffstat.NewResult()))

	assert.NotContains(t, buf.String(), "Total changes")
}

func TestRenderText_Alignment(t *testing.T) {
	t.Parallel()

	result := diffstat.NewResult()
	result.Code[lang.Go] = &diffstat.Stats{Added: 100, Removed: 2}
	result.Code[lang.Rust] = &diffstat.Stats{Added: 1}

	var buf bytes.Buffer
	require.NoError(t, Renderer{Format: FormatText, NoColor: true}.Render(&buf, result))

	var rows []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "|") {
			rows = append(rows, line)
		}
	}

	require.Len(t, rows, 2)
	assert.Len(t, rows[1], len(rows[0]), "rows must be padded to equal width")
	assert.Equal(t, strings.Index(rows[0], "|"), strings.Index(rows[1], "|"))
}

func TestRenderJSON_Deterministic(t *testing.T) {
	t.Parallel()

	result := sampleResult()
	r := Renderer{Format: FormatJSON}

	var first, second bytes.Buffer
	require.NoError(t, r.Render(&first, result))
	require.NoError(t, r.Render(&second, result))
	assert.Equal(t, first.String(), second.String())

	var doc struct {
		Rows         []Row `json:"rows"`
		TotalChanges int   `json:"total_changes"`
	}
	require.NoError(t, json.Unmarshal(first.Bytes(), &doc))

	assert.Equal(t, 26, doc.TotalChanges)
	require.Len(t, doc.Rows, 3)
	assert.Equal(t, "Comments", doc.Rows[0].Name)

	sum := 0
	for _, row := range doc.Rows {
		sum += row.Total + row.TestTotal
	}

	assert.Equal(t, doc.TotalChanges, sum)
}

func TestRenderTable_ContainsRowsAndFooter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := Renderer{Format: FormatTable, NoColor: true}
	require.NoError(t, r.Render(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "Rust")
	assert.Contains(t, out, "Comments")
	assert.Contains(t, out, "26")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"text", "table", "json"} {
		f, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), f)
	}

	_, err := ParseFormat("yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRender_UnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Renderer{Format: "csv"}.Render(&buf, diffstat.NewResult())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
