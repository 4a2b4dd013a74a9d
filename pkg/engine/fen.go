package engine

import (
	"fmt"

	"github.com/notnil/chess"
)

var toChessPiece = map[Piece]chess.Piece{
	NewPiece(King, White):   chess.WhiteKing,
	NewPiece(Queen, White):  chess.WhiteQueen,
	NewPiece(Rook, White):   chess.WhiteRook,
	NewPiece(Bishop, White): chess.WhiteBishop,
	NewPiece(Knight, White): chess.WhiteKnight,
	NewPiece(Pawn, White):   chess.WhitePawn,
	NewPiece(King, Black):   chess.BlackKing,
	NewPiece(Queen, Black):  chess.BlackQueen,
	NewPiece(Rook, Black):   chess.BlackRook,
	NewPiece(Bishop, Black): chess.BlackBishop,
	NewPiece(Knight, Black): chess.BlackKnight,
	NewPiece(Pawn, Black):   chess.BlackPawn,
}

var fromChessPiece = func() map[chess.Piece]Piece {
	m := make(map[chess.Piece]Piece, len(toChessPiece))
	for p, cp := range toChessPiece {
		m[cp] = p
	}
	return m
}()

// ChessSquare converts to the a1-origin square numbering of notnil/chess.
func ChessSquare(sq Square) chess.Square {
	return chess.Square((NumRows-1-sq.Row())*NumCols + sq.Col())
}

func fromChessSquare(sq chess.Square) Square {
	return SquareAt(NumRows-1-int(sq.Rank()), int(sq.File()))
}

// ChessPiece converts a piece code to its notnil/chess equivalent.
func ChessPiece(p Piece) chess.Piece {
	if cp, ok := toChessPiece[p]; ok {
		return cp
	}
	return chess.NoPiece
}

// ChessBoard builds the notnil/chess view of the board.
func (b *Board) ChessBoard() *chess.Board {
	m := make(map[chess.Square]chess.Piece)
	for sq := Square(0); sq < NumSquares; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			m[ChessSquare(sq)] = ChessPiece(p)
		}
	}
	return chess.NewBoard(m)
}

// FEN describes the position with toMove as the side to move. Castling and
// en passant are never available.
func (b *Board) FEN(toMove Color) string {
	turn := "w"
	if toMove == Black {
		turn = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", b.ChessBoard().String(), turn)
}

// ParseFEN loads a board and side to move from a FEN string.
func ParseFEN(fen string) (*Board, Color, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, NoColor, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	pos := chess.NewGame(opt).Position()

	b := &Board{}
	for sq, cp := range pos.Board().SquareMap() {
		if p, ok := fromChessPiece[cp]; ok {
			b.Set(fromChessSquare(sq), p)
		}
	}

	toMove := White
	if pos.Turn() == chess.Black {
		toMove = Black
	}
	return b, toMove, nil
}
