package ansi

const esc = 0x1b

// SegmentKind identifies tokenizer output types.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentEscape
)

// Segment holds a classified byte sequence.
type Segment struct {
	Kind  SegmentKind
	Bytes []byte
}

// Intro returns the byte following ESC for escape segments, or 0.
func (s Segment) Intro() byte {
	if s.Kind != SegmentEscape || len(s.Bytes) < 2 {
		return 0
	}
	return s.Bytes[1]
}

// IsGraphics reports whether the segment is an APC string. Terminal graphics
// payloads travel in APC strings.
func (s Segment) IsGraphics() bool {
	return s.Intro() == '_'
}

type scanState int

const (
	inText scanState = iota
	afterEsc
	inCSI
	inString // OSC, DCS, SOS, PM, APC
)

// Tokenizer splits ANSI escape sequences from text. It keeps partial escape
// sequences between calls to Push, so input may be fed in arbitrary chunks.
type Tokenizer struct {
	state   scanState
	pending []byte
	// sawEsc is set inside a string sequence after ESC, where '\' ends it.
	sawEsc bool
}

// Push processes a chunk of bytes and returns completed segments.
func (t *Tokenizer) Push(data []byte) []Segment {
	var (
		out  []Segment
		text []byte
	)
	for _, b := range data {
		if t.state == inText {
			if b != esc {
				text = append(text, b)
				continue
			}
			out = appendSegment(out, SegmentText, text)
			text = text[:0]
		}
		t.pending = append(t.pending, b)
		if t.advance(b) {
			out = appendSegment(out, SegmentEscape, t.pending)
			t.reset()
		}
	}
	if t.state == inText {
		out = appendSegment(out, SegmentText, text)
	}
	return out
}

// advance moves the state machine past b, which has already been buffered,
// and reports whether the pending escape sequence is complete.
func (t *Tokenizer) advance(b byte) bool {
	switch t.state {
	case inText:
		t.state = afterEsc
	case afterEsc:
		switch b {
		case '[':
			t.state = inCSI
		case ']', 'P', 'X', '^', '_':
			t.state = inString
		default:
			return true
		}
	case inCSI:
		return b >= 0x40 && b <= 0x7e
	case inString:
		if b == 0x07 && t.pending[1] == ']' {
			return true
		}
		if t.sawEsc {
			t.sawEsc = false
			return b == '\\'
		}
		t.sawEsc = b == esc
	}
	return false
}

func (t *Tokenizer) reset() {
	t.pending = t.pending[:0]
	t.state = inText
	t.sawEsc = false
}

// Flush emits any pending bytes as an escape segment.
func (t *Tokenizer) Flush() []Segment {
	if t.state == inText {
		return nil
	}
	out := appendSegment(nil, SegmentEscape, t.pending)
	t.reset()
	return out
}

func appendSegment(out []Segment, kind SegmentKind, b []byte) []Segment {
	if len(b) == 0 {
		return out
	}
	return append(out, Segment{Kind: kind, Bytes: append([]byte(nil), b...)})
}

// Segments tokenizes a complete string in one call. An unterminated escape
// at the end of s is returned as a final escape segment.
func Segments(s string) []Segment {
	var t Tokenizer
	segs := t.Push([]byte(s))
	return append(segs, t.Flush()...)
}
