package engine

import "fmt"

type Color int8

const (
	NoColor Color = 0
	White   Color = 1
	Black   Color = -1
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

func (c Color) Opponent() Color {
	return -c
}

type PieceType int8

const (
	Empty PieceType = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Empty"
	}
}

// Piece is a signed piece code: magnitude is the PieceType, sign is the Color.
type Piece int8

const NoPiece Piece = 0

func NewPiece(pt PieceType, c Color) Piece {
	return Piece(int8(pt) * int8(c))
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Color() Color {
	switch {
	case p > 0:
		return White
	case p < 0:
		return Black
	default:
		return NoColor
	}
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	letters := "?PBNRQK"
	s := string(letters[p.Type()])
	if p.Color() == Black {
		return string(s[0] + 'a' - 'A')
	}
	return s
}

const (
	NumRows    = 8
	NumCols    = 8
	NumSquares = NumRows * NumCols
)

// Square is a row-major index 0..63; row 0 is Black's back rank.
type Square int8

const NoSquare Square = -1

func SquareAt(row, col int) Square {
	if row < 0 || row >= NumRows || col < 0 || col >= NumCols {
		return NoSquare
	}
	return Square(row*NumCols + col)
}

func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

func (sq Square) Row() int {
	return int(sq) / NumCols
}

func (sq Square) Col() int {
	return int(sq) % NumCols
}

// String returns the algebraic name of the square, e.g. row 6 col 4 is "e2".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col(), NumRows-sq.Row())
}

type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

type Board struct {
	squares [NumSquares]Piece
}

var backRank = [NumCols]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset puts the board in the standard initial position.
func (b *Board) Reset() {
	b.Clear()
	for col := 0; col < NumCols; col++ {
		b.squares[SquareAt(0, col)] = NewPiece(backRank[col], Black)
		b.squares[SquareAt(1, col)] = NewPiece(Pawn, Black)
		b.squares[SquareAt(6, col)] = NewPiece(Pawn, White)
		b.squares[SquareAt(7, col)] = NewPiece(backRank[col], White)
	}
}

func (b *Board) Clear() {
	b.squares = [NumSquares]Piece{}
}

func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq]
}

func (b *Board) Set(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.squares[sq] = p
}

// Apply moves the piece and promotes a pawn reaching the far rank to a queen.
// It returns whatever occupied the destination before the move.
func (b *Board) Apply(m Move) (captured Piece, promoted bool) {
	p := b.At(m.From)
	captured = b.At(m.To)
	b.squares[m.To] = p
	b.squares[m.From] = NoPiece

	if p.Type() == Pawn && m.To.Row() == promotionRow(p.Color()) {
		b.squares[m.To] = NewPiece(Queen, p.Color())
		promoted = true
	}
	return captured, promoted
}

// withMove relocates the piece for the duration of fn and restores both squares
// on every exit path, including a panic inside fn.
func (b *Board) withMove(m Move, fn func() bool) bool {
	moving, captured := b.squares[m.From], b.squares[m.To]
	b.squares[m.To] = moving
	b.squares[m.From] = NoPiece
	defer func() {
		b.squares[m.From] = moving
		b.squares[m.To] = captured
	}()

	return fn()
}

func (b *Board) Equal(o *Board) bool {
	return b.squares == o.squares
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// String draws the board with rank 8 on top, for logs and test failures.
func (b *Board) String() string {
	var s []byte
	for row := 0; row < NumRows; row++ {
		s = append(s, byte('8'-row), ' ')
		for col := 0; col < NumCols; col++ {
			s = append(s, b.At(SquareAt(row, col)).String()...)
		}
		s = append(s, '\n')
	}
	s = append(s, "  abcdefgh"...)
	return string(s)
}

func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return NumRows - 1
}

func pawnStartRow(c Color) int {
	if c == White {
		return NumRows - 2
	}
	return 1
}

// pawnDirection is the row delta of a single pawn step.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}
