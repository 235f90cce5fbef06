package markup

import (
	"math/rand"
	"strings"
	"sync"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"single style", "<bold>bold</>", "\x1b[1mbold\x1b[0m"},
		{"multiple styles", "<bold italic>bold italic</>", "\x1b[1;3mbold italic\x1b[0m"},
		{"reversed colors", "<reversed>reversed</>", "\x1b[7mreversed\x1b[0m"},
		{"text color", "<blue>blue</>", "\x1b[34mblue\x1b[0m"},
		{"background color", "<bg:blue>bg:blue</>", "\x1b[44mbg:blue\x1b[0m"},
		{"unclosed tags", "<bold>bold", "\x1b[1mbold\x1b[0m"},
		{"trailing text", "<bold>bold</> trailing", "\x1b[1mbold\x1b[0m trailing"},
		{"nested tags", "<blue><italic>blue italic</> blue</>", "\x1b[3;34mblue italic\x1b[0m\x1b[34m blue\x1b[0m"},
		{"inner color wins", "<red>a<blue>b</></>", "\x1b[31ma\x1b[0m\x1b[34mb\x1b[0m"},
		{"hidden text dropped", "<blue>blue<hidden>hidden</></>", "\x1b[34mblue\x1b[0m"},
		{"escaped tags", "\\<bold>\\bold", "<bold>\\bold"},
		{"backslash in text", "some\\ text", "some\\ text"},
		{"backslash in tag", "<bold \\ italic>bold italic</>", "\x1b[1;3mbold italic\x1b[0m"},
		{"trailing backslash", "hello\\", "hello\\"},
		{"existing ansi", "\x1b[34m<dimmed>.</>git\x1b[0m<dimmed>/</>", "\x1b[34m\x1b[2m.\x1b[0mgit\x1b[0m\x1b[2m/\x1b[0m"},
		{"clear resets", "<bold><italic><clear>text</></></>", "text"},
		{"clear anywhere in set", "<clear bold>text</>", "text"},
		{"invalid directive", "<invalid>text</>", "text"},
		{"out of range rgb", "<rgb(256,256,256)>text</>", "text"},
		{"invalid directive keeps others", "<bold nope>text</>", "\x1b[1mtext\x1b[0m"},
		{"extra close tag", "</>text</>", "text"},
		{"empty tag", "<>text</>", "text"},
		{"blank tag", "<  >text</>", "text"},
		{"plain text", "hello", "hello"},
		{"empty input", "", ""},
		{"mixed colors and styles", "<bold bg:red green>x</>", "\x1b[1;41;32mx\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.markup); got != tt.want {
				t.Fatalf("Render(%q) = %q, want %q", tt.markup, got, tt.want)
			}
		})
	}
}

func TestRenderUnclosedMatchesClosed(t *testing.T) {
	pairs := [][2]string{
		{"<bold>bold</>", "<bold>bold"},
		{"<blue><italic>x</></>", "<blue><italic>x"},
	}
	for _, p := range pairs {
		if Render(p[0]) != Render(p[1]) {
			t.Fatalf("%q and %q render differently", p[0], p[1])
		}
	}
}

func TestRenderInvalidMatchesPlain(t *testing.T) {
	for _, m := range []string{"<invalid>text</>", "<bg:rgb(256,0,0)>text</>"} {
		if got := Render(m); got != "text" {
			t.Fatalf("Render(%q) = %q", m, got)
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   int
	}{
		{"ascii", "a", 1},
		{"latin with combining accent", "e\u0301", 1},
		{"devanagari", "\u092e\u0948\u0902", 1},
		{"simple emoji", "\U0001F926", 1},
		{"emoji with skin tone", "\U0001F926\U0001F3FD", 1},
		{"extended grapheme cluster emoji", "\U0001F926\U0001F3FD\u200D\u2642\uFE0F", 1},
		{"nerd font glyph", "\uf07b", 1},
		{"tags excluded", "<bold>bold</>", 4},
		{"hidden text excluded", "<blue>blue<hidden>hidden</></>", 4},
		{"escaped tag counted", "\\<b>", 3},
		{"unclosed tag", "<bold>bold", 4},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Len(tt.markup); got != tt.want {
				t.Fatalf("Len(%q) = %d, want %d", tt.markup, got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := map[string]string{
		"<blue>blue<hidden>hidden</></>": "blue",
		"\\<bold>\\bold":                 "<bold>\\bold",
		"<bold>a</> <italic>b":           "a b",
	}
	for in, want := range tests {
		if got := Strip(in); got != want {
			t.Fatalf("Strip(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap("x", "bold"); got != "<bold>x</>" {
		t.Fatalf("Wrap = %q", got)
	}
	if got := Wrap("x", " "); got != "x" {
		t.Fatalf("Wrap with blank directives = %q", got)
	}
}

func TestWrapTextEndingInBackslash(t *testing.T) {
	for _, text := range []string{"dir\\", "a\\\\", "\\"} {
		wrapped := Wrap(Escape(text), "dimmed")
		if got := Strip(wrapped); got != text {
			t.Fatalf("Strip(%q) = %q, want %q", wrapped, got, text)
		}
		if got, want := Len(wrapped), len(text); got != want {
			t.Fatalf("Len(%q) = %d, want %d", wrapped, got, want)
		}
	}
	if got := Render(Wrap(Escape("dir\\"), "dimmed")); got != "\x1b[2mdir\\\x1b[0m" {
		t.Fatalf("Render = %q", got)
	}
}

const alphabet = "ab <>/\\\u00e7"

func randomMarkup(r *rand.Rand, n int) string {
	runes := []rune(alphabet)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(runes[r.Intn(len(runes))])
	}
	return b.String()
}

func TestPlainTextRendersUnchanged(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		s := strings.NewReplacer("<", "", "\\", "").Replace(randomMarkup(r, r.Intn(32)))
		got := Render(s)
		if got != s || strings.Contains(got, "\x1b") {
			t.Fatalf("Render(%q) = %q", s, got)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		s := randomMarkup(r, r.Intn(32))
		if got := Strip(Escape(s)); got != s {
			t.Fatalf("Strip(Escape(%q)) = %q", s, got)
		}
		if got := Render(Escape(s)); got != s {
			t.Fatalf("Render(Escape(%q)) = %q", s, got)
		}
		wrapped := Wrap(Escape(s), "bold")
		if got := Strip(wrapped); got != s {
			t.Fatalf("Strip(%q) = %q, want %q", wrapped, got, s)
		}
	}
}

func TestArbitraryMarkupIsTotal(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		s := randomMarkup(r, r.Intn(48))
		Render(s)
		// Every run is ASCII or a precomposed letter, so runs cannot merge
		// into a single cluster when concatenated.
		if got, want := Len(s), len([]rune(Strip(s))); got != want {
			t.Fatalf("Len(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestRenderIsSafeForConcurrentUse(t *testing.T) {
	const markup = "<bold blue>a<hidden>b</>c</>d"
	want := Render(markup)
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if Render(markup) != want || Len(markup) != 3 {
					errs <- "mismatch under concurrency"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}
}
