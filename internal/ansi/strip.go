package ansi

import (
	"bytes"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// IsSGRReset reports whether seq is a full SGR reset, ESC[0m or ESC[m.
func IsSGRReset(seq []byte) bool {
	return bytes.Equal(seq, []byte("\x1b[0m")) || bytes.Equal(seq, []byte("\x1b[m"))
}

// ContainsReset reports whether s holds at least one SGR reset.
func ContainsReset(s string) bool {
	if !strings.Contains(s, "\x1b[") {
		return false
	}
	for _, seg := range Segments(s) {
		if seg.Kind == SegmentEscape && IsSGRReset(seg.Bytes) {
			return true
		}
	}
	return false
}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	return xansi.Strip(s)
}

// StripGraphics removes graphics payloads (APC strings) from s and keeps
// everything else, including SGR sequences.
func StripGraphics(s string) string {
	return filter(s, func(seg Segment) bool { return !seg.IsGraphics() })
}

// filter rebuilds s keeping text and the escape segments accepted by keep.
func filter(s string, keep func(Segment) bool) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range Segments(s) {
		if seg.Kind == SegmentText || keep(seg) {
			b.Write(seg.Bytes)
		}
	}
	return b.String()
}
