package engine

// IsLegalGeometry reports whether the piece on from may move to to according to
// its movement pattern and path obstruction. King safety is not considered.
func (b *Board) IsLegalGeometry(from, to Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	p := b.At(from)
	if p == NoPiece {
		return false
	}
	if target := b.At(to); target != NoPiece && target.Color() == p.Color() {
		return false
	}

	dr := to.Row() - from.Row()
	dc := to.Col() - from.Col()
	adr, adc := abs(dr), abs(dc)

	switch p.Type() {
	case Pawn:
		return b.pawnGeometry(p.Color(), from, to, dr, dc)
	case Bishop:
		return adr == adc && b.pathClear(from, to)
	case Knight:
		return (adr == 1 && adc == 2) || (adr == 2 && adc == 1)
	case Rook:
		return (dr == 0 || dc == 0) && b.pathClear(from, to)
	case Queen:
		return (adr == adc || dr == 0 || dc == 0) && b.pathClear(from, to)
	case King:
		return adr <= 1 && adc <= 1
	}
	return false
}

func (b *Board) pawnGeometry(c Color, from, to Square, dr, dc int) bool {
	dir := pawnDirection(c)

	switch {
	case dc == 0 && dr == dir:
		return b.At(to) == NoPiece
	case dc == 0 && dr == 2*dir:
		if from.Row() != pawnStartRow(c) {
			return false
		}
		between := SquareAt(from.Row()+dir, from.Col())
		return b.At(between) == NoPiece && b.At(to) == NoPiece
	case abs(dc) == 1 && dr == dir:
		// Friendly destinations were already rejected by the caller.
		return b.At(to) != NoPiece
	}
	return false
}

// pathClear reports whether every square strictly between from and to is empty.
// from and to must share a row, a column or a diagonal.
func (b *Board) pathClear(from, to Square) bool {
	rowStep := sign(to.Row() - from.Row())
	colStep := sign(to.Col() - from.Col())

	row, col := from.Row()+rowStep, from.Col()+colStep
	for row != to.Row() || col != to.Col() {
		if b.At(SquareAt(row, col)) != NoPiece {
			return false
		}
		row += rowStep
		col += colStep
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
