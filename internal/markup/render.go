package markup

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Render converts markup into text with ANSI escape codes. Nested tags are
// flattened, so the conversion cannot be reversed. Runs inside a hidden tag
// produce no output at all.
func Render(markup string) string {
	var b strings.Builder
	Reduce(markup, &b, func(stack Stack, text string, b *strings.Builder) *strings.Builder {
		if text == "" || stack.Has(hiddenTag) {
			return b
		}
		b.WriteString(Format(text, stack.Flatten()))
		return b
	})
	return b.String()
}

// Len returns the display length of markup: the number of grapheme clusters
// outside tags, excluding hidden runs. Table and grid layouts align on it.
func Len(markup string) int {
	return Reduce(markup, 0, func(stack Stack, text string, n int) int {
		if text == "" || stack.Has(hiddenTag) {
			return n
		}
		return n + uniseg.GraphemeClusterCount(text)
	})
}

// Strip returns the visible text of markup without tags or styling.
func Strip(markup string) string {
	var b strings.Builder
	Reduce(markup, &b, func(stack Stack, text string, b *strings.Builder) *strings.Builder {
		if text != "" && !stack.Has(hiddenTag) {
			b.WriteString(text)
		}
		return b
	})
	return b.String()
}

// Escape backslash-escapes every '<' so text reads literally as markup.
// A trailing backslash in text still escapes a tag that directly follows
// it, so build tags around escaped text with Wrap.
func Escape(text string) string {
	return strings.ReplaceAll(text, string(tagOpen), string(escapeChar)+string(tagOpen))
}

// Wrap encloses text in a tag holding directives. Blank directives return
// text as is. Text ending in a backslash is left with the tag open, since a
// closing tag after it would read as an escaped '<' and open tags close at
// the end of input anyway.
func Wrap(text, directives string) string {
	if strings.TrimSpace(directives) == "" {
		return text
	}
	open := string(tagOpen) + directives + string(tagClose) + text
	if strings.HasSuffix(text, string(escapeChar)) {
		return open
	}
	return open + string(tagOpen) + closeTag + string(tagClose)
}
