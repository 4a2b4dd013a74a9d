package transport

import (
	"errors"
	"testing"

	"github.com/qnkhuat/linkchess/pkg/engine"
)

func TestMessageMoveEncode(t *testing.T) {
	m := engine.Move{From: engine.SquareAt(6, 4), To: engine.SquareAt(4, 4)}

	b := NewMessageMove(m).Encode()
	if len(b) != FrameSize {
		t.Fatalf("expected %d byte frame, got %d", FrameSize, len(b))
	}
	if b[0] != 'M' || b[1] != 52 || b[2] != 36 {
		t.Errorf("unexpected frame % x", b)
	}
}

func TestDecodeMove(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		err   error
	}{
		{"valid", []byte{'M', 0, 63}, nil},
		{"short", []byte{'M', 1}, ErrShortFrame},
		{"bad tag", []byte{'X', 1, 2}, ErrBadTag},
		{"from out of range", []byte{'M', 64, 2}, ErrSquareRange},
		{"to out of range", []byte{'M', 1, 255}, ErrSquareRange},
	}

	for _, tt := range tests {
		m, err := DecodeMove(tt.frame)
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: expected error %v, got %v", tt.name, tt.err, err)
		}
		if tt.err == nil && (m.From != tt.frame[1] || m.To != tt.frame[2]) {
			t.Errorf("%s: decoded %+v from % x", tt.name, m, tt.frame)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		parsed, err := ParseMode(m.String())
		if err != nil || parsed != m {
			t.Errorf("failed to parse %s: got %s, %v", m, parsed, err)
		}
	}
	if m, err := ParseMode("RADIO"); err != nil || m != ModeRadio {
		t.Errorf("expected case insensitive parse, got %s, %v", m, err)
	}
	if _, err := ParseMode("carrier-pigeon"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestLocalNeverReceives(t *testing.T) {
	l := NewLocal()
	if err := l.Send(engine.Move{From: 52, To: 36}); err != nil {
		t.Errorf("local send failed: %s", err)
	}
	if _, ok := l.TryReceive(); ok {
		t.Error("local link must never deliver a move")
	}
}
