package markup

import (
	"reflect"
	"testing"
)

type foldCall struct {
	stack [][]string
	text  string
}

func record(markup string) []foldCall {
	return Reduce(markup, []foldCall(nil), func(stack Stack, text string, acc []foldCall) []foldCall {
		snapshot := make([][]string, len(stack))
		for i, frame := range stack {
			snapshot[i] = append([]string(nil), frame...)
		}
		return append(acc, foldCall{stack: snapshot, text: text})
	})
}

func TestReduceFoldsBeforeEveryTag(t *testing.T) {
	calls := record("<a><b></></>")
	if len(calls) != 5 {
		t.Fatalf("calls = %d, want 5", len(calls))
	}
	for i, c := range calls {
		if c.text != "" {
			t.Fatalf("call %d text = %q", i, c.text)
		}
	}
}

func TestReduceTracksNesting(t *testing.T) {
	calls := record("<blue>one<italic>two</>three</>four")
	want := []foldCall{
		{stack: [][]string{}, text: ""},
		{stack: [][]string{{"blue"}}, text: "one"},
		{stack: [][]string{{"blue"}, {"italic"}}, text: "two"},
		{stack: [][]string{{"blue"}}, text: "three"},
		{stack: [][]string{}, text: "four"},
	}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("calls = %+v", calls)
	}
}

func TestReduceUnclosedTagsReachFinalFold(t *testing.T) {
	calls := record("<bold>bold")
	last := calls[len(calls)-1]
	if !reflect.DeepEqual(last.stack, [][]string{{"bold"}}) || last.text != "bold" {
		t.Fatalf("last = %+v", last)
	}
}

func TestReduceIgnoresExtraCloseTags(t *testing.T) {
	calls := record("</></>x")
	last := calls[len(calls)-1]
	if len(last.stack) != 0 || last.text != "x" {
		t.Fatalf("last = %+v", last)
	}
}

func TestReduceKeepsEmptyDirectives(t *testing.T) {
	calls := record("<>a< >b")
	if !reflect.DeepEqual(calls[1].stack, [][]string{{""}}) {
		t.Fatalf("stack after <> = %q", calls[1].stack)
	}
	if !reflect.DeepEqual(calls[2].stack, [][]string{{""}, {"", ""}}) {
		t.Fatalf("stack after < > = %q", calls[2].stack)
	}
}

func TestReduceUnterminatedTagBody(t *testing.T) {
	calls := record("text<bold")
	if calls[0].text != "text" {
		t.Fatalf("first text = %q", calls[0].text)
	}
	if !reflect.DeepEqual(calls[1].stack, [][]string{{"bold"}}) || calls[1].text != "" {
		t.Fatalf("final call = %+v", calls[1])
	}
}

func TestReduceEscapes(t *testing.T) {
	calls := record(`\<bold>\b\`)
	if len(calls) != 1 || calls[0].text != `<bold>\b\` {
		t.Fatalf("calls = %+v", calls)
	}
}

func TestStackFlattenAndHas(t *testing.T) {
	s := Stack{{"bold", "blue"}, {"hidden"}}
	if got := s.Flatten(); !reflect.DeepEqual(got, []string{"bold", "blue", "hidden"}) {
		t.Fatalf("Flatten = %q", got)
	}
	if !s.Has("hidden") || s.Has("italic") {
		t.Fatalf("Has mismatch")
	}
	if got := Stack(nil).Flatten(); len(got) != 0 {
		t.Fatalf("empty Flatten = %q", got)
	}
}
