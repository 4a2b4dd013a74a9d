package engine

// IsSafe reports whether moving the piece on from to to leaves the mover's own
// king out of check. The move is applied for the duration of the check and the
// board is restored afterwards.
func (b *Board) IsSafe(from, to Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	mover := b.At(from).Color()
	if mover == NoColor {
		return false
	}

	return b.withMove(Move{From: from, To: to}, func() bool {
		return !b.IsInCheck(mover)
	})
}

// IsLegal combines geometry and safety: the move a player may actually make.
func (b *Board) IsLegal(m Move) bool {
	return b.IsLegalGeometry(m.From, m.To) && b.IsSafe(m.From, m.To)
}
