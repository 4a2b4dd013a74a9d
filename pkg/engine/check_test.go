package engine

import (
	"testing"
)

func TestFindKing(t *testing.T) {
	b := NewBoard()

	white, ok := b.FindKing(White)
	if !ok || white != sq("e1") {
		t.Errorf("expected white king on e1, got %s (found=%v)", white, ok)
	}
	black, ok := b.FindKing(Black)
	if !ok || black != sq("e8") {
		t.Errorf("expected black king on e8, got %s (found=%v)", black, ok)
	}

	b.Set(sq("e8"), NoPiece)
	if found, ok := b.FindKing(Black); ok {
		t.Errorf("expected no black king, found one on %s", found)
	}
}

func TestMissingKingIsNotInCheck(t *testing.T) {
	b := setup(map[string]Piece{"e1": wK, "e4": wR})

	if b.IsInCheck(Black) {
		t.Error("expected a board without a black king to report no check")
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name    string
		pieces  map[string]Piece
		color   Color
		inCheck bool
	}{
		{"initial position", nil, White, false},
		{"rook on open file", map[string]Piece{"e1": wK, "e5": bR, "h8": bK}, White, true},
		{"rook blocked", map[string]Piece{"e1": wK, "e3": wN, "e5": bR, "h8": bK}, White, false},
		{"knight", map[string]Piece{"e1": wK, "f3": bN, "h8": bK}, White, true},
		{"black pawn attacks downwards", map[string]Piece{"e1": wK, "d2": bP, "h8": bK}, White, true},
		{"black pawn does not attack backwards", map[string]Piece{"e3": wK, "d2": bP, "h8": bK}, White, false},
		{"white pawn attacks upwards", map[string]Piece{"a1": wK, "d7": wP, "e8": bK}, Black, true},
		{"pawn does not attack straight ahead", map[string]Piece{"a1": wK, "e7": wP, "e8": bK}, Black, false},
		{"bishop diagonal", map[string]Piece{"a1": wK, "h8": bK, "d4": bB}, White, true},
		{"queen blocked by own piece", map[string]Piece{"a1": wK, "b2": wP, "h8": bK, "d4": bQ}, White, false},
		{"adjacent king", map[string]Piece{"e4": wK, "e5": bK}, White, true},
	}

	for _, tt := range tests {
		b := NewBoard()
		if tt.pieces != nil {
			b = setup(tt.pieces)
		}

		if got := b.IsInCheck(tt.color); got != tt.inCheck {
			t.Errorf("%s: expected in check=%v, got %v\n%s", tt.name, tt.inCheck, got, b)
		}
	}
}

func TestIsSquareAttacked(t *testing.T) {
	b := setup(map[string]Piece{"e1": wK, "e8": bK, "a8": bR, "c6": bN})

	attacked := []string{"a1", "a4", "b8", "d8", "b4", "d4", "e5", "e7"}
	for _, name := range attacked {
		if !b.IsSquareAttacked(sq(name), White) {
			t.Errorf("expected %s to be attacked by black", name)
		}
	}

	safe := []string{"b1", "h1", "c5", "e4"}
	for _, name := range safe {
		if b.IsSquareAttacked(sq(name), White) {
			t.Errorf("expected %s not to be attacked by black", name)
		}
	}
}
