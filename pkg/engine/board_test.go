package engine

import (
	"testing"
)

// sq converts an algebraic name such as "e2" to a Square.
func sq(name string) Square {
	return SquareAt(NumRows-int(name[1]-'0'), int(name[0]-'a'))
}

// setup builds a board from algebraic square names.
func setup(pieces map[string]Piece) *Board {
	b := &Board{}
	for name, p := range pieces {
		b.Set(sq(name), p)
	}
	return b
}

var (
	wP = NewPiece(Pawn, White)
	wB = NewPiece(Bishop, White)
	wN = NewPiece(Knight, White)
	wR = NewPiece(Rook, White)
	wQ = NewPiece(Queen, White)
	wK = NewPiece(King, White)
	bP = NewPiece(Pawn, Black)
	bB = NewPiece(Bishop, Black)
	bN = NewPiece(Knight, Black)
	bR = NewPiece(Rook, Black)
	bQ = NewPiece(Queen, Black)
	bK = NewPiece(King, Black)
)

func TestPieceCodes(t *testing.T) {
	codes := map[Piece]int8{wP: 1, wB: 2, wN: 3, wR: 4, wQ: 5, wK: 6, bP: -1, bK: -6}
	for p, code := range codes {
		if int8(p) != code {
			t.Errorf("expected %s %s to have code %d, got %d", p.Color(), p.Type(), code, int8(p))
		}
	}
	if bQ.Type() != Queen || bQ.Color() != Black {
		t.Errorf("failed to decode black queen: %s %s", bQ.Color(), bQ.Type())
	}
	if NoPiece.Color() != NoColor || NoPiece.Type() != Empty {
		t.Error("expected empty piece to have no color and no type")
	}
}

func TestSquareIndexing(t *testing.T) {
	e2 := SquareAt(6, 4)
	if e2 != 52 {
		t.Errorf("expected row 6 col 4 to be index 52, got %d", e2)
	}
	if e2.String() != "e2" {
		t.Errorf("expected e2, got %s", e2)
	}
	if sq("a8") != 0 || sq("h1") != 63 {
		t.Errorf("expected a8=0 and h1=63, got %d and %d", sq("a8"), sq("h1"))
	}
	if SquareAt(8, 0) != NoSquare || SquareAt(0, -1) != NoSquare {
		t.Error("expected out of range coordinates to map to NoSquare")
	}
	if NoSquare.Valid() || Square(64).Valid() {
		t.Error("expected NoSquare and 64 to be invalid")
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	expected := map[string]Piece{
		"a8": bR, "b8": bN, "c8": bB, "d8": bQ, "e8": bK, "h8": bR,
		"e7": bP, "e2": wP,
		"a1": wR, "b1": wN, "c1": wB, "d1": wQ, "e1": wK, "h1": wR,
		"e4": NoPiece,
	}
	for name, p := range expected {
		if got := b.At(sq(name)); got != p {
			t.Errorf("expected %s on %s, got %s", p, name, got)
		}
	}

	var count int
	for s := Square(0); s < NumSquares; s++ {
		if b.At(s) != NoPiece {
			count++
		}
	}
	if count != 32 {
		t.Errorf("expected 32 pieces in the initial position, got %d", count)
	}
}

func TestApplyCapture(t *testing.T) {
	b := setup(map[string]Piece{"e1": wK, "e8": bK, "d4": wN, "e6": bP})

	captured, promoted := b.Apply(Move{From: sq("d4"), To: sq("e6")})
	if captured != bP {
		t.Errorf("expected to capture a black pawn, got %s", captured)
	}
	if promoted {
		t.Error("knight move must not promote")
	}
	if b.At(sq("e6")) != wN || b.At(sq("d4")) != NoPiece {
		t.Errorf("failed to relocate knight:\n%s", b)
	}
}

func TestApplyPromotion(t *testing.T) {
	tests := []struct {
		name     string
		pawn     Piece
		from, to string
		queen    Piece
	}{
		{"white", wP, "a7", "a8", wQ},
		{"black", bP, "h2", "h1", bQ},
		{"white capture", wP, "b7", "c8", wQ},
	}

	for _, tt := range tests {
		b := setup(map[string]Piece{"e1": wK, "e8": bK, tt.from: tt.pawn, "c8": bN})
		before := b.Copy()

		_, promoted := b.Apply(Move{From: sq(tt.from), To: sq(tt.to)})
		if !promoted {
			t.Errorf("%s: expected promotion", tt.name)
		}
		if b.At(sq(tt.to)) != tt.queen {
			t.Errorf("%s: expected %s on %s, got %s", tt.name, tt.queen, tt.to, b.At(sq(tt.to)))
		}

		for s := Square(0); s < NumSquares; s++ {
			if s == sq(tt.from) || s == sq(tt.to) {
				continue
			}
			if b.At(s) != before.At(s) {
				t.Errorf("%s: promotion altered unrelated square %s", tt.name, s)
			}
		}
	}
}

func TestWithMoveRestores(t *testing.T) {
	positions := []*Board{
		NewBoard(),
		setup(map[string]Piece{"e1": wK, "e8": bK, "d4": wQ, "d7": bR, "g7": bP}),
	}

	for _, b := range positions {
		before := b.Copy()
		for from := Square(0); from < NumSquares; from++ {
			for to := Square(0); to < NumSquares; to++ {
				if !b.IsLegalGeometry(from, to) {
					continue
				}

				moving := b.At(from)
				b.withMove(Move{From: from, To: to}, func() bool {
					if b.At(to) != moving || b.At(from) != NoPiece {
						t.Errorf("move %s%s was not applied inside the scope", from, to)
					}
					return true
				})

				if !b.Equal(before) {
					t.Fatalf("move %s%s was not reverted:\n%s\nexpected:\n%s", from, to, b, before)
				}
			}
		}
	}
}

func TestWithMoveRestoresOnPanic(t *testing.T) {
	b := NewBoard()
	before := b.Copy()

	func() {
		defer func() {
			recover()
		}()
		b.withMove(Move{From: sq("e2"), To: sq("e4")}, func() bool {
			panic("evaluation failed")
		})
	}()

	if !b.Equal(before) {
		t.Errorf("board was not restored after a panic:\n%s", b)
	}
}
