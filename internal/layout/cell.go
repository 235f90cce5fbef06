// Package layout arranges rendered markup into aligned cells, grids and
// tables. All widths are measured on markup, so tags never count.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suryansh-23/lsmark/internal/ansi"
	"github.com/suryansh-23/lsmark/internal/markup"
)

// ErrAlignment reports an unrecognized alignment name.
var ErrAlignment = errors.New("invalid alignment")

// Alignment positions text inside a cell wider than the text.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment accepts left, center and right, their first letters, or
// the format-string symbols <, ^ and >.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left", "<", "":
		return AlignLeft, nil
	case "c", "center", "centre", "^":
		return AlignCenter, nil
	case "r", "right", ">":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrAlignment, s)
}

// Measurer returns the display width of a markup string.
type Measurer func(string) int

func (m Measurer) orDefault() Measurer {
	if m == nil {
		return markup.Len
	}
	return m
}

// Cell renders one table or grid cell. A Cell holds no content, so the same
// value can print every row of a column.
type Cell struct {
	Align    Alignment
	PadLeft  int
	PadRight int
	Measure  Measurer
}

// Print pads text to width according to the cell's alignment, adds the
// fixed padding and renders the result. A width no larger than the text
// adds no alignment padding. Non-blank directives style the whole cell,
// padding included.
func (c Cell) Print(text string, width int, directives string) string {
	textLen := c.Measure.orDefault()(ansi.StripGraphics(text))

	var left, right int
	if width > textLen {
		pad := width - textLen
		switch c.Align {
		case AlignCenter:
			left = pad / 2
			right = pad - left
		case AlignRight:
			left = pad
		default:
			right = pad
		}
	}

	content := strings.Repeat(" ", left+c.PadLeft) + text + strings.Repeat(" ", right+c.PadRight)
	return markup.Render(markup.Wrap(content, directives))
}
