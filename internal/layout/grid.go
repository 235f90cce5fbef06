package layout

import (
	"fmt"
	"io"
	"strings"
)

const gridGap = 2

// Grid lays out entries in as few lines as the terminal width allows, then
// uses as few columns as that line count needs.
type Grid struct {
	Entries []string
	// Down fills columns top to bottom instead of rows left to right.
	Down bool
	// Width is the terminal width in columns. Zero or less means unknown,
	// which yields a single column.
	Width   int
	Measure Measurer
}

// Render writes the grid to w.
func (g *Grid) Render(w io.Writer) error {
	n := len(g.Entries)
	if n == 0 {
		return nil
	}
	measure := g.Measure.orDefault()

	maxWidth := 0
	for _, e := range g.Entries {
		maxWidth = max(maxWidth, measure(e))
	}
	rows, cols := g.Shape(maxWidth)

	entries := g.Entries
	if g.Down {
		entries = down(g.Entries, rows)
	}

	cell := Cell{Align: AlignLeft, PadRight: gridGap, Measure: measure}
	end := Cell{Align: AlignLeft, Measure: measure}
	var b strings.Builder
	for idx, text := range entries {
		if idx%cols == cols-1 || idx == n-1 {
			b.WriteString(end.Print(text, maxWidth, ""))
			b.WriteByte('\n')
		} else {
			b.WriteString(cell.Print(text, maxWidth, ""))
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	return nil
}

// Shape returns the row and column counts for entries at most itemWidth
// wide.
func (g *Grid) Shape(itemWidth int) (rows, cols int) {
	n := len(g.Entries)
	if n == 0 {
		return 0, 0
	}
	maxCols := 1
	if g.Width > 0 {
		maxCols = max(1, (g.Width+gridGap)/(itemWidth+gridGap))
	}
	rows = ceilDiv(n, maxCols)
	cols = ceilDiv(n, rows)
	return rows, cols
}

// down reorders entries so that printing them row by row reads column by
// column: split into columns of the given height, then take one entry from
// each column per line.
func down(entries []string, rows int) []string {
	var chunks [][]string
	for start := 0; start < len(entries); start += rows {
		chunks = append(chunks, entries[start:min(start+rows, len(entries))])
	}
	out := make([]string, 0, len(entries))
	for r := 0; r < rows; r++ {
		for _, chunk := range chunks {
			if r < len(chunk) {
				out = append(out, chunk[r])
			}
		}
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
