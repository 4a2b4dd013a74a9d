package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/qnkhuat/linkchess/pkg/engine"
	"github.com/rivo/tview"
)

// The board table has the rank labels in column 0, the squares in columns
// 1..8 and the file labels in row 8.
const (
	labelCol = 0
	labelRow = engine.NumRows
)

func squareCell(sq engine.Square) (row, col int) {
	return sq.Row(), sq.Col() + 1
}

// pieceGlyph is the unicode figure of a piece, or blank for an empty square.
func pieceGlyph(p engine.Piece) string {
	if p == engine.NoPiece {
		return " "
	}
	return engine.ChessPiece(p).String()
}

// squareBg returns the theme's color corresponding to the square
func squareBg(sq engine.Square, t Theme) tcell.Color {
	if (sq.Row()+sq.Col())%2 == 0 {
		return t.SquareLight
	}
	return t.SquareDark
}

// stylePiece applies the theme's style to a piece based upon its color
func stylePiece(p engine.Piece, t Theme) tcell.Color {
	if p.Color() == engine.Black {
		return t.Black
	}
	return t.White
}

// squareText pads the glyph so every square is three columns wide, whatever
// width the terminal gives the chess figures.
func squareText(p engine.Piece) string {
	return " " + runewidth.FillRight(pieceGlyph(p), 2)
}

// drawSquare draws a board square and its corresponding piece
func drawSquare(table *tview.Table, sq engine.Square, p engine.Piece, bg tcell.Color, t Theme) {
	row, col := squareCell(sq)
	cell := tview.NewTableCell(squareText(p)).
		SetAlign(tview.AlignCenter).
		SetTextColor(stylePiece(p, t)).
		SetBackgroundColor(bg).
		SetReference(sq)
	table.SetCell(row, col, cell)
}

// drawLabels draws the rank (row indicator) and file (column) labels
func drawLabels(table *tview.Table, t Theme) {
	for row := 0; row < engine.NumRows; row++ {
		table.SetCell(row, labelCol, tview.NewTableCell(fmt.Sprintf("%d ", engine.NumRows-row)).
			SetTextColor(t.Rank).
			SetSelectable(false))
	}
	for col := 0; col < engine.NumCols; col++ {
		table.SetCell(labelRow, col+1, tview.NewTableCell(string(rune('a'+col))).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.File).
			SetSelectable(false))
	}
	table.SetCell(labelRow, labelCol, tview.NewTableCell("").SetSelectable(false))
}

// turnLabel is shown above the board
func turnLabel(toMove engine.Color) string {
	return fmt.Sprintf(" %s to Move ", toMove)
}
