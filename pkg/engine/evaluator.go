package engine

type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// Classify decides whether color c, as the side to move, has a legal move.
// The scan stops at the first legal move found.
func (b *Board) Classify(c Color) Status {
	for from := Square(0); from < NumSquares; from++ {
		if b.squares[from].Color() != c {
			continue
		}
		for to := Square(0); to < NumSquares; to++ {
			if b.IsLegalGeometry(from, to) && b.IsSafe(from, to) {
				return Ongoing
			}
		}
	}

	if b.IsInCheck(c) {
		return Checkmate
	}
	return Stalemate
}

// SafeMovesFrom lists every destination the piece on from can legally reach.
func (b *Board) SafeMovesFrom(from Square) []Square {
	var moves []Square
	if b.At(from) == NoPiece {
		return moves
	}
	for to := Square(0); to < NumSquares; to++ {
		if b.IsLegalGeometry(from, to) && b.IsSafe(from, to) {
			moves = append(moves, to)
		}
	}
	return moves
}

// LegalMoves enumerates every legal move for color c.
func (b *Board) LegalMoves(c Color) []Move {
	var moves []Move
	for from := Square(0); from < NumSquares; from++ {
		if b.squares[from].Color() != c {
			continue
		}
		for _, to := range b.SafeMovesFrom(from) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
