package layout

import (
	"fmt"
	"io"
	"strings"
)

// DefaultHeaderStyle styles the header row unless a table overrides it.
const DefaultHeaderStyle = "bold italic underline"

// Column describes one table column.
type Column struct {
	// Name is the header text; it may contain markup.
	Name  string
	Align Alignment
	// Uniform marks columns whose cells all share one width, so sizing
	// only needs the first row.
	Uniform bool
}

// Table renders rows in aligned columns, one line per row.
type Table struct {
	Columns     []Column
	Rows        [][]string
	Header      bool
	HeaderStyle string
	// Solo disables the uniform-width shortcut, e.g. when a single row is
	// listed and the first row is not representative.
	Solo    bool
	Measure Measurer
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	if len(t.Columns) == 0 {
		return nil
	}
	widths := t.Widths()
	cells := t.cells()

	var b strings.Builder
	if t.Header {
		style := t.HeaderStyle
		if style == "" {
			style = DefaultHeaderStyle
		}
		for i, col := range t.Columns {
			b.WriteString(cells[i].Print(col.Name, widths[i], style))
		}
		b.WriteByte('\n')
	}
	for _, row := range t.Rows {
		for i := range t.Columns {
			b.WriteString(cells[i].Print(cellText(row, i), widths[i], ""))
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func (t *Table) cells() []Cell {
	measure := t.Measure.orDefault()
	cells := make([]Cell, len(t.Columns))
	for i, col := range t.Columns {
		cells[i] = Cell{Align: col.Align, PadRight: 1, Measure: measure}
	}
	// The last column has no right padding.
	cells[len(cells)-1].PadRight = 0
	return cells
}

// Widths returns the width of each column. The last column is left
// unsized (zero) so long values do not pad every other row.
func (t *Table) Widths() []int {
	measure := t.Measure.orDefault()
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		if i == len(t.Columns)-1 {
			break
		}
		limit := len(t.Rows)
		if limit > 0 && !t.Solo && col.Uniform {
			limit = 1
		}
		width := 0
		if t.Header {
			width = measure(col.Name)
		}
		for _, row := range t.Rows[:limit] {
			if i < len(row) {
				width = max(width, measure(row[i]))
			}
		}
		widths[i] = width
	}
	return widths
}

func cellText(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
