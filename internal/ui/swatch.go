package ui

import "github.com/suryansh-23/lsmark/internal/markup"

// Swatch returns markup that shows a directive styled by itself.
func Swatch(directive string) string {
	return markup.Wrap(markup.Escape(directive), directive)
}

// Swatches lists a swatch for every style and color directive: styles
// first, then foreground, bright foreground, background and bright
// background colors.
func Swatches() []string {
	var out []string
	for _, s := range markup.StyleNames() {
		if s == "hidden" {
			// A hidden swatch renders nothing; show its name instead.
			out = append(out, "<dimmed>(hidden)</>")
			continue
		}
		out = append(out, Swatch(s))
	}
	for _, prefix := range []string{"", "bright_", "bg:", "bg:bright_"} {
		for _, c := range markup.ColorNames() {
			out = append(out, Swatch(prefix+c))
		}
	}
	return out
}
