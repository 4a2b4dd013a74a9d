package engine

// FindKing returns the square holding the king of color c.
func (b *Board) FindKing(c Color) (Square, bool) {
	king := NewPiece(King, c)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.squares[sq] == king {
			return sq, true
		}
	}
	return NoSquare, false
}

// IsSquareAttacked reports whether any piece of the defender's opponent has
// legal geometry onto sq.
func (b *Board) IsSquareAttacked(sq Square, defender Color) bool {
	attacker := defender.Opponent()
	for from := Square(0); from < NumSquares; from++ {
		if b.squares[from].Color() != attacker {
			continue
		}
		if b.IsLegalGeometry(from, sq) {
			return true
		}
	}
	return false
}

// IsInCheck reports whether the king of color c is attacked. A board without
// that king is never in check.
func (b *Board) IsInCheck(c Color) bool {
	king, ok := b.FindKing(c)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(king, c)
}
