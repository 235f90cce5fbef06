package markup

import (
	"regexp"
	"strconv"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/suryansh-23/lsmark/internal/ansi"
)

const (
	sgrReset   = "\x1b[0m"
	bgPrefix   = "bg:"
	brightPart = "bright_"
	clearStyle = "clear"
	hiddenTag  = "hidden"
)

// styleAttrs lists the style directives in SGR code order.
var styleAttrs = [...]struct {
	name string
	set  func(xansi.Style) xansi.Style
}{
	{"bold", xansi.Style.Bold},
	{"dimmed", xansi.Style.Faint},
	{"italic", xansi.Style.Italic},
	{"underline", xansi.Style.Underline},
	{"blink", xansi.Style.SlowBlink},
	{"reversed", xansi.Style.Reverse},
	{"hidden", xansi.Style.Conceal},
	{"strikethrough", xansi.Style.Strikethrough},
}

// colorIndex maps color names to their ANSI color number.
var colorIndex = map[string]xansi.BasicColor{
	"black":   xansi.Black,
	"red":     xansi.Red,
	"green":   xansi.Green,
	"yellow":  xansi.Yellow,
	"blue":    xansi.Blue,
	"magenta": xansi.Magenta,
	"purple":  xansi.Magenta,
	"cyan":    xansi.Cyan,
	"white":   xansi.White,
}

// brightOffset moves a basic color to its bright variant.
const brightOffset = 8

var trueColor = regexp.MustCompile(`^rgb\((\d{1,3}),\s?(\d{1,3}),\s?(\d{1,3})\)$`)

// style accumulates directives for a single text run.
type style struct {
	attrs   [len(styleAttrs)]bool
	fg, bg  xansi.Color
	cleared bool
}

// apply folds one directive into the style and reports whether it was
// recognized. Unrecognized directives leave the style untouched.
func (s *style) apply(directive string) bool {
	if directive == "" {
		return false
	}
	isBg := strings.HasPrefix(directive, bgPrefix)
	name := strings.ReplaceAll(directive, bgPrefix, "")

	if name == clearStyle {
		s.cleared = true
		return true
	}
	for i, attr := range styleAttrs {
		if attr.name == name {
			s.attrs[i] = true
			return true
		}
	}

	c, ok := parseColor(name)
	if !ok {
		return false
	}
	if isBg {
		s.bg = c
	} else {
		s.fg = c
	}
	return true
}

// parseColor resolves a color name, bright_ variant or rgb(r,g,b) triple.
func parseColor(name string) (xansi.Color, bool) {
	if m := trueColor.FindStringSubmatch(name); m != nil {
		var channels [3]uint8
		for i, raw := range m[1:] {
			v, err := strconv.ParseUint(raw, 10, 8)
			if err != nil {
				return nil, false
			}
			channels[i] = uint8(v)
		}
		return xansi.RGBColor{R: channels[0], G: channels[1], B: channels[2]}, true
	}

	name = strings.ToLower(strings.TrimSpace(name))
	var offset xansi.BasicColor
	if rest, ok := strings.CutPrefix(name, brightPart); ok {
		name = rest
		offset = brightOffset
	}
	c, ok := colorIndex[name]
	if !ok {
		return nil, false
	}
	return c + offset, true
}

// sequence returns the SGR prefix for the style, or "" when the style is
// plain. Style codes come first in ascending order, then background, then
// foreground.
func (s *style) sequence() string {
	if s.cleared {
		return ""
	}
	var seq xansi.Style
	for i, on := range s.attrs {
		if on {
			seq = styleAttrs[i].set(seq)
		}
	}
	if s.bg != nil {
		seq = seq.BackgroundColor(s.bg)
	}
	if s.fg != nil {
		seq = seq.ForegroundColor(s.fg)
	}
	if len(seq) == 0 {
		return ""
	}
	return seq.String()
}

// Format styles text with the given directives, applied in order so later
// colors replace earlier ones. A "clear" anywhere in the list suppresses all
// styling. Text without effective styling is returned unchanged.
func Format(text string, directives []string) string {
	var s style
	for _, d := range directives {
		s.apply(d)
	}
	prefix := s.sequence()
	if prefix == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(prefix) + len(text) + len(sgrReset))
	b.WriteString(prefix)
	if ansi.ContainsReset(text) {
		// Resets already inside the text would end our styling early.
		for _, seg := range ansi.Segments(text) {
			b.Write(seg.Bytes)
			if seg.Kind == ansi.SegmentEscape && ansi.IsSGRReset(seg.Bytes) {
				b.WriteString(prefix)
			}
		}
	} else {
		b.WriteString(text)
	}
	b.WriteString(sgrReset)
	return b.String()
}

// Valid reports whether the directive is recognized. Rendering ignores
// invalid directives; Valid lets configuration loaders report them.
func Valid(directive string) bool {
	var s style
	return s.apply(directive)
}

// Unknown returns the non-empty tokens of a space separated directive list
// that are not recognized.
func Unknown(directives string) []string {
	var out []string
	for _, d := range strings.Split(directives, " ") {
		if d != "" && !Valid(d) {
			out = append(out, d)
		}
	}
	return out
}

// StyleNames returns the style directives in SGR code order, followed by
// "clear".
func StyleNames() []string {
	names := make([]string, 0, len(styleAttrs)+1)
	for _, attr := range styleAttrs {
		names = append(names, attr.name)
	}
	return append(names, clearStyle)
}

// ColorNames returns the base color names in SGR order, without aliases.
func ColorNames() []string {
	return []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
}
