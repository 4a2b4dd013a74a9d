package pkg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/qnkhuat/linkchess/pkg/engine"
)

func TestParseEvent(t *testing.T) {
	tests := map[string]Event{
		"up":    EventUp,
		"K":     EventUp,
		"s":     EventDown,
		"h":     EventLeft,
		"Right": EventRight,
		"ok":    EventConfirm,
		"esc":   EventBack,
		"reset": EventReset,
	}
	for token, expected := range tests {
		ev, ok := ParseEvent(token)
		if !ok || ev != expected {
			t.Errorf("%q: expected %s, got %s (ok=%v)", token, expected, ev, ok)
		}
	}
	if _, ok := ParseEvent("jump"); ok {
		t.Error("parsed an unknown token")
	}
}

func TestReadEvents(t *testing.T) {
	out := make(chan Event, 10)
	if err := ReadEvents(strings.NewReader("up  down\n\nreset bogus\nl\n"), out); err != nil {
		t.Fatalf("failed to read events: %s", err)
	}

	var got []Event
	for ev := range out {
		got = append(got, ev)
	}
	expected := []Event{EventUp, EventDown, EventConfirm, EventReset, EventRight}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("event %d: expected %s, got %s", i, expected[i], got[i])
		}
	}
}

func TestConsoleRenderer(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.DrawMenu("Connection", []string{"Wired", "Radio", "Local"}, 1)
	c.DrawBoard(engine.NewBoard(), engine.White)
	c.DrawCursor(square("e2"), square("e3"))
	c.DrawSelection(square("e2"), []engine.Square{square("e4"), square("e3")})
	c.DrawSelection(engine.NoSquare, nil)
	c.DrawStatus(StatusNone)
	c.DrawStatus(StatusCheck)

	out := buf.String()
	for _, want := range []string{"> Radio", "  Wired", "rnbqkbnr", "White to move", "cursor e3", "selected e2: e4 e3", "Check!"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleGame(t *testing.T) {
	var buf bytes.Buffer
	tc, _, _ := newController(t)
	tc.Renderer = NewConsole(&buf)

	input := make(chan Event, 64)
	go ReadEvents(strings.NewReader("down down ok ok\n"), input)

	r := NewRunner(tc, input)
	r.Debouncer = nil
	for r.Step() {
	}

	if tc.Session.Phase != PhaseWhiteTurn {
		t.Errorf("expected WhiteTurn, got %s", tc.Session.Phase)
	}
	if !strings.Contains(buf.String(), "White to move") {
		t.Errorf("board not drawn:\n%s", buf.String())
	}
}
