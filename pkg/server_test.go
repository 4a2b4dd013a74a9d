package pkg

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSSHCommandArgs(t *testing.T) {
	s, err := NewSSHServer(SshPort, "", "chessterm", "-log", "/tmp/chessterm.log")
	if err != nil {
		t.Fatalf("failed to create server: %s", err)
	}

	tests := []struct {
		user     string
		isPty    bool
		expected []string
	}{
		{"alice", true, []string{"-log", "/tmp/chessterm.log", "-name", "alice"}},
		{"bob", false, []string{"-log", "/tmp/chessterm.log", "-name", "bob", "-console"}},
		{"", true, []string{"-log", "/tmp/chessterm.log"}},
	}

	for _, tt := range tests {
		if got := s.commandArgs(tt.user, tt.isPty); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%q pty=%v: expected %v, got %v", tt.user, tt.isPty, tt.expected, got)
		}
	}
	if len(s.Args) != 2 {
		t.Errorf("commandArgs modified the base arguments: %v", s.Args)
	}
}

func TestSSHServerMissingHostKey(t *testing.T) {
	_, err := NewSSHServer(SshPort, filepath.Join(t.TempDir(), "missing"), "chessterm")
	if err == nil {
		t.Error("expected an error for a missing host key")
	}
}
