package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/linkchess/pkg"
	"github.com/qnkhuat/linkchess/pkg/engine"
	"github.com/rivo/tview"
)

const (
	pageMenu  = "menu"
	pageBoard = "board"

	EventQueueSize = 16
)

// View is the terminal UI. It implements pkg.Renderer and turns key presses
// into pkg.Events. Draw calls may come from any goroutine; they are
// marshalled onto the tview event loop.
type View struct {
	App    *tview.Application
	Pages  *tview.Pages
	Board  *tview.Table
	Menu   *tview.Table
	Status *tview.TextView
	Theme  Theme
	Events chan pkg.Event

	update func(func())

	// Only touched on the tview goroutine.
	board    *engine.Board
	cursor   engine.Square
	selected engine.Square
	hints    map[engine.Square]bool
	check    engine.Square
}

func NewView(theme Theme) *View {
	app := tview.NewApplication()

	board := tview.NewTable()
	board.SetBorder(true).SetTitleAlign(tview.AlignLeft)

	menu := tview.NewTable()
	menu.SetBorder(true)

	status := tview.NewTextView().SetTextColor(theme.Msg)

	pages := tview.NewPages().
		AddPage(pageMenu, menu, true, true).
		AddPage(pageBoard, board, true, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(pages, 0, 1, true).
		AddItem(status, 1, 0, false)

	v := &View{
		App:      app,
		Pages:    pages,
		Board:    board,
		Menu:     menu,
		Status:   status,
		Theme:    theme,
		Events:   make(chan pkg.Event, EventQueueSize),
		board:    engine.NewBoard(),
		cursor:   engine.NoSquare,
		selected: engine.NoSquare,
		hints:    make(map[engine.Square]bool),
		check:    engine.NoSquare,
	}
	v.update = func(f func()) {
		app.QueueUpdateDraw(f)
	}

	drawLabels(board, theme)
	app.SetRoot(layout, true).SetInputCapture(v.capture)
	return v
}

func (v *View) capture(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		v.App.Stop()
		return nil
	}

	e := keyEvent(ev)
	if e == pkg.EventNone {
		return ev
	}
	select {
	case v.Events <- e:
	default:
		// The runner is behind; a dropped press is a bounce.
	}
	return nil
}

func keyEvent(ev *tcell.EventKey) pkg.Event {
	switch ev.Key() {
	case tcell.KeyUp:
		return pkg.EventUp
	case tcell.KeyDown:
		return pkg.EventDown
	case tcell.KeyLeft:
		return pkg.EventLeft
	case tcell.KeyRight:
		return pkg.EventRight
	case tcell.KeyEnter:
		return pkg.EventConfirm
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return pkg.EventBack
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return pkg.EventUp
		case 'j', 's':
			return pkg.EventDown
		case 'h', 'a':
			return pkg.EventLeft
		case 'l', 'd':
			return pkg.EventRight
		case ' ':
			return pkg.EventConfirm
		case 'r':
			return pkg.EventReset
		}
	}
	return pkg.EventNone
}

func (v *View) DrawMenu(title string, items []string, index int) {
	items = append([]string{}, items...)
	v.update(func() {
		v.Menu.Clear()
		v.Menu.SetTitle(fmt.Sprintf(" %s ", title))
		for i, item := range items {
			cell := tview.NewTableCell(fmt.Sprintf(" %s ", item))
			if i == index {
				cell.SetBackgroundColor(v.Theme.SquareCursor).SetTextColor(tcell.ColorBlack)
			}
			v.Menu.SetCell(i, 0, cell)
		}
		v.Pages.SwitchToPage(pageMenu)
	})
}

func (v *View) DrawBoard(b *engine.Board, toMove engine.Color) {
	snapshot := b.Copy()
	check := engine.NoSquare
	if snapshot.IsInCheck(toMove) {
		check, _ = snapshot.FindKing(toMove)
	}

	v.update(func() {
		v.board = snapshot
		v.check = check
		v.Board.SetTitle(turnLabel(toMove))
		for sq := engine.Square(0); sq < engine.NumSquares; sq++ {
			v.paint(sq)
		}
		v.Pages.SwitchToPage(pageBoard)
	})
}

func (v *View) DrawCursor(prev, cur engine.Square) {
	v.update(func() {
		v.cursor = cur
		v.paint(prev)
		v.paint(cur)
	})
}

func (v *View) DrawSelection(selected engine.Square, hints []engine.Square) {
	next := make(map[engine.Square]bool, len(hints))
	for _, sq := range hints {
		next[sq] = true
	}

	v.update(func() {
		stale := v.hints
		prev := v.selected
		v.selected, v.hints = selected, next

		v.paint(prev)
		v.paint(selected)
		for sq := range stale {
			v.paint(sq)
		}
		for sq := range next {
			v.paint(sq)
		}
	})
}

func (v *View) DrawStatus(msg pkg.Status) {
	v.update(func() {
		v.Status.SetText(string(msg))
	})
}

// paint redraws one square. The cursor wins over the selection, the
// selection over hints and hints over the check marker.
func (v *View) paint(sq engine.Square) {
	if !sq.Valid() {
		return
	}

	bg := squareBg(sq, v.Theme)
	switch {
	case sq == v.cursor:
		bg = v.Theme.SquareCursor
	case sq == v.selected:
		bg = v.Theme.SquareSelected
	case v.hints[sq]:
		bg = v.Theme.SquareHint
	case sq == v.check:
		bg = v.Theme.SquareCheck
	}
	drawSquare(v.Board, sq, v.board.At(sq), bg, v.Theme)
}
