package pkg

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/qnkhuat/linkchess/pkg/engine"
	"github.com/qnkhuat/linkchess/pkg/transport"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("failed to parse empty command line: %s", err)
	}
	if cfg.Mode != transport.ModeWired || cfg.Listen != ":1998" || cfg.RadioPort != transport.DefaultRadioPort {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.TrustPeer || cfg.Console || cfg.StartBoard != nil {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-mode", "local",
		"-connect", "/tmp/chess.sock",
		"-trust-peer",
		"-name", "kestrel",
		"-fen", "4k3/8/8/8/8/8/1p6/4K3 b - - 0 1",
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	if cfg.Mode != transport.ModeLocal || cfg.Connect != "/tmp/chess.sock" || !cfg.TrustPeer || cfg.Name != "kestrel" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.StartBoard == nil || cfg.StartColor != engine.Black {
		t.Fatalf("failed to load start position, color %s", cfg.StartColor)
	}

	tc := NewGame(cfg, &recorder{}, nil)
	if tc.Session.MenuIndex != modeIndex(transport.ModeLocal) || !tc.TrustPeer {
		t.Errorf("game not built from config: menu %d, trust %v", tc.Session.MenuIndex, tc.TrustPeer)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := [][]string{
		{"-mode", "pigeon"},
		{"-fen", "not a position"},
		{"-radio-port", "0"},
		{"-unknown"},
	}

	for _, args := range tests {
		if _, err := ParseFlags(args, &bytes.Buffer{}); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}

	if _, err := ParseFlags([]string{"-h"}, &bytes.Buffer{}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestDialerLocal(t *testing.T) {
	dial := NewDialer(Config{}, NewDevice("unit"))

	link, err := dial(transport.ModeLocal)
	if err != nil {
		t.Fatalf("failed to open local link: %s", err)
	}
	if _, ok := link.(*transport.Local); !ok {
		t.Errorf("expected *transport.Local, got %T", link)
	}

	if _, err := dial(transport.Mode(42)); !errors.Is(err, transport.ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestDevice(t *testing.T) {
	a, b := NewDevice(""), NewDevice("")
	if a.Name == "" || a.ID == b.ID {
		t.Errorf("expected a generated name and distinct ids, got %s and %s", a, b)
	}
	if d := NewDevice("kestrel"); d.Name != "kestrel" {
		t.Errorf("expected given name kept, got %s", d.Name)
	}
}
