// Package markup renders and measures lsmark markup strings.
//
// Markup is an HTML-like shorthand for ANSI styling. A tag holds space
// separated directives, `<bold blue>text</>`, and `</>` closes the innermost
// open tag. Tags nest and inner directives override outer ones. A backslash
// before `<` escapes it; a backslash before anything else is literal.
package markup

import "strings"

const (
	escapeChar = '\\'
	tagOpen    = '<'
	tagClose   = '>'
	closeTag   = "/"
)

// Stack is the list of currently open directive sets, outermost first.
type Stack [][]string

// Flatten concatenates the directives of every frame, outer to inner.
func (s Stack) Flatten() []string {
	var n int
	for _, frame := range s {
		n += len(frame)
	}
	out := make([]string, 0, n)
	for _, frame := range s {
		out = append(out, frame...)
	}
	return out
}

// Has reports whether any open frame holds the directive.
func (s Stack) Has(directive string) bool {
	for _, frame := range s {
		for _, d := range frame {
			if d == directive {
				return true
			}
		}
	}
	return false
}

func (s Stack) pop() Stack {
	if len(s) == 0 {
		return s
	}
	return s[:len(s)-1]
}

// FoldFunc receives the open tags and the text run that just ended, and
// returns the new accumulator. The text may be empty. The stack is only
// valid for the duration of the call.
type FoldFunc[T any] func(stack Stack, text string, acc T) T

// Reduce walks markup once, left to right, and folds every run of text
// together with the tags that are open around it.
//
// The fold runs before each tag, including when no text has accumulated, and
// once more at the end of input. Tags left open at the end are still on the
// stack for that final call. A close tag with nothing open is ignored.
func Reduce[T any](markup string, init T, fold FoldFunc[T]) T {
	var (
		stack Stack
		text  strings.Builder
	)
	acc := init
	flush := func() {
		acc = fold(stack, text.String(), acc)
		text.Reset()
	}

	for i := 0; i < len(markup); {
		switch markup[i] {
		case escapeChar:
			i++
			if i < len(markup) && markup[i] == tagOpen {
				text.WriteByte(tagOpen)
				i++
			} else {
				text.WriteByte(escapeChar)
			}
		case tagOpen:
			flush()
			i++
			var tag string
			if end := strings.IndexByte(markup[i:], tagClose); end >= 0 {
				tag = markup[i : i+end]
				i += end + 1
			} else {
				tag = markup[i:]
				i = len(markup)
			}
			if tag == closeTag {
				stack = stack.pop()
			} else {
				stack = append(stack, strings.Split(tag, " "))
			}
		default:
			end := strings.IndexAny(markup[i:], `\<`)
			if end < 0 {
				end = len(markup) - i
			}
			text.WriteString(markup[i : i+end])
			i += end
		}
	}
	flush()
	return acc
}
