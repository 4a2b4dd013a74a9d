package pkg

import (
	"log"
	"time"

	"github.com/qnkhuat/linkchess/pkg/engine"
	"github.com/qnkhuat/linkchess/pkg/transport"
)

const SettleDelay = 300 * time.Millisecond

// Renderer is whatever draws the session: the tview UI or the line console.
type Renderer interface {
	DrawMenu(title string, items []string, index int)
	DrawBoard(b *engine.Board, toMove engine.Color)
	DrawCursor(prev, cur engine.Square)
	DrawSelection(selected engine.Square, hints []engine.Square)
	DrawStatus(msg Status)
}

// Dialer opens the transport for a connection mode.
type Dialer func(mode transport.Mode) (transport.Transport, error)

var colorMenu = []engine.Color{engine.White, engine.Black}

// TurnController drives the phase machine. Local input arrives through
// Handle; moves from the peer are picked up by Poll.
type TurnController struct {
	Session  *Session
	Renderer Renderer
	Dial     Dialer

	// TrustPeer applies inbound moves without checking them first.
	TrustPeer bool

	// StartBoard and StartColor replace the initial position when set.
	StartBoard *engine.Board
	StartColor engine.Color

	Settle time.Duration
	sleep  func(time.Duration)
}

func NewTurnController(s *Session, r Renderer, dial Dialer) *TurnController {
	return &TurnController{
		Session:  s,
		Renderer: r,
		Dial:     dial,
		Settle:   SettleDelay,
		sleep:    time.Sleep,
	}
}

// Tick runs one iteration of the polling loop.
func (tc *TurnController) Tick(ev Event) {
	if ev != EventNone {
		tc.Handle(ev)
	}
	if tc.Session.Phase == PhaseStartGame {
		tc.startGame()
	}
	tc.Poll()
}

// Redraw repaints whatever the current phase shows.
func (tc *TurnController) Redraw() {
	s := tc.Session
	switch s.Phase {
	case PhaseConnectionSelect:
		tc.Renderer.DrawMenu("Connection", modeItems(), s.MenuIndex)
	case PhaseColorMenu:
		tc.Renderer.DrawMenu("Play as", colorItems(), s.MenuIndex)
	default:
		tc.Renderer.DrawBoard(s.Board, s.Turn.ToMove())
		tc.Renderer.DrawCursor(s.Cursor, s.Cursor)
		tc.Renderer.DrawSelection(s.Turn.Selected, tc.hints())
	}
}

func (tc *TurnController) Handle(ev Event) {
	switch tc.Session.Phase {
	case PhaseConnectionSelect:
		tc.handleConnectionSelect(ev)
	case PhaseColorMenu:
		tc.handleColorMenu(ev)
	case PhaseWhiteTurn, PhaseBlackTurn:
		tc.handleTurn(ev)
	case PhaseGameOver:
		if ev == EventConfirm || ev == EventReset {
			tc.reset()
		}
	}
}

func (tc *TurnController) handleConnectionSelect(ev Event) {
	s := tc.Session
	switch ev {
	case EventUp, EventDown:
		s.MenuIndex = moveMenu(s.MenuIndex, ev, len(transport.Modes))
		tc.Renderer.DrawMenu("Connection", modeItems(), s.MenuIndex)

	case EventConfirm:
		mode := transport.Modes[s.MenuIndex]
		log.Printf("Connecting over %s", mode)
		link, err := tc.Dial(mode)
		if err != nil {
			log.Printf("Failed to open %s link: %s", mode, err)
			tc.Renderer.DrawStatus(StatusLinkFailed)
			return
		}

		s.Mode = mode
		s.Link = link
		s.Phase = PhaseColorMenu
		s.MenuIndex = 0
		tc.Renderer.DrawStatus(StatusNone)
		tc.Renderer.DrawMenu("Play as", colorItems(), s.MenuIndex)
	}
}

func (tc *TurnController) handleColorMenu(ev Event) {
	s := tc.Session
	switch ev {
	case EventUp, EventDown:
		s.MenuIndex = moveMenu(s.MenuIndex, ev, len(colorMenu))
		tc.Renderer.DrawMenu("Play as", colorItems(), s.MenuIndex)

	case EventBack:
		s.closeLink()
		s.Phase = PhaseConnectionSelect
		s.MenuIndex = modeIndex(s.Mode)
		tc.Renderer.DrawMenu("Connection", modeItems(), s.MenuIndex)

	case EventConfirm:
		s.LocalColor = colorMenu[s.MenuIndex]
		if tc.StartBoard != nil {
			s.Board = tc.StartBoard.Copy()
		} else {
			s.Board.Reset()
		}
		s.Turn = TurnState{Selected: engine.NoSquare}
		if tc.StartColor == engine.Black {
			s.Turn.Number = 1
		}
		s.Result = engine.Ongoing
		s.Winner = engine.NoColor
		s.Phase = PhaseStartGame
		log.Printf("Game %s: %s playing %s", s.ID, s.Mode, s.LocalColor)
	}
}

func (tc *TurnController) startGame() {
	s := tc.Session
	s.Cursor = homeSquare(s.LocalColor)
	s.Turn.Selected = engine.NoSquare
	s.Phase = turnPhase(s.Turn.ToMove())

	tc.Renderer.DrawBoard(s.Board, s.Turn.ToMove())
	tc.Renderer.DrawCursor(s.Cursor, s.Cursor)
	tc.Renderer.DrawSelection(engine.NoSquare, nil)
	if s.IsLocalTurn() {
		tc.Renderer.DrawStatus(StatusNone)
	} else {
		tc.Renderer.DrawStatus(StatusWaitingPeer)
	}
}

func (tc *TurnController) handleTurn(ev Event) {
	s := tc.Session
	if !s.IsLocalTurn() {
		return
	}

	switch ev {
	case EventUp, EventDown, EventLeft, EventRight:
		prev := s.Cursor
		s.Cursor = moveCursor(s.Cursor, ev)
		if s.Cursor != prev {
			tc.Renderer.DrawCursor(prev, s.Cursor)
		}

	case EventConfirm:
		tc.confirm()
	}
}

// confirm is the select-then-select gesture.
func (tc *TurnController) confirm() {
	s := tc.Session
	toMove := s.Turn.ToMove()

	switch s.Turn.Selected {
	case engine.NoSquare:
		if s.Board.At(s.Cursor).Color() != toMove {
			tc.Renderer.DrawStatus(StatusSelectPiece)
			return
		}
		s.Turn.Selected = s.Cursor
		tc.Renderer.DrawSelection(s.Turn.Selected, tc.hints())
		tc.Renderer.DrawStatus(StatusNone)

	case s.Cursor:
		s.Turn.Selected = engine.NoSquare
		tc.Renderer.DrawSelection(engine.NoSquare, nil)

	default:
		m := engine.Move{From: s.Turn.Selected, To: s.Cursor}
		if !s.Board.IsLegalGeometry(m.From, m.To) {
			log.Printf("Rejected %s: illegal geometry", m)
			tc.Renderer.DrawStatus(StatusInvalidMove)
			return
		}
		if !s.Board.IsSafe(m.From, m.To) {
			log.Printf("Rejected %s: king left in check", m)
			tc.Renderer.DrawStatus(StatusKingInCheck)
			return
		}
		tc.play(m, true)
	}
}

// Poll applies at most one move from the peer while waiting for its turn.
func (tc *TurnController) Poll() {
	s := tc.Session
	if !s.Phase.InGame() || s.IsLocalTurn() || s.Link == nil {
		return
	}

	m, ok := s.Link.TryReceive()
	if !ok {
		return
	}
	log.Printf("Received %s", m)

	if !tc.TrustPeer && !tc.acceptable(m) {
		log.Printf("Rejected %s from peer in position %s", m, s.Board.FEN(s.Turn.ToMove()))
		tc.Renderer.DrawStatus(StatusDesync)
		return
	}
	tc.play(m, false)
}

// acceptable runs the same checks a local move goes through.
func (tc *TurnController) acceptable(m engine.Move) bool {
	b := tc.Session.Board
	if b.At(m.From).Color() != tc.Session.Turn.ToMove() {
		return false
	}
	return b.IsLegalGeometry(m.From, m.To) && b.IsSafe(m.From, m.To)
}

// play applies a validated move, hands a local one to the link, and
// evaluates the position for the new side to move.
func (tc *TurnController) play(m engine.Move, local bool) {
	s := tc.Session
	mover := s.Turn.ToMove()

	captured, promoted := s.Board.Apply(m)
	s.Turn.Number++
	s.Turn.Selected = engine.NoSquare

	status := StatusNone
	if local && s.Mode != transport.ModeLocal && s.Link != nil {
		if err := s.Link.Send(m); err != nil {
			log.Printf("Failed to send %s: %s", m, err)
			status = StatusLinkError
		}
	}

	next := s.Turn.ToMove()
	log.Printf("%s played %s (captured %s, promoted %v): %s", mover, m, captured, promoted, s.Board.FEN(next))
	tc.sleep(tc.Settle)

	switch s.Board.Classify(next) {
	case engine.Checkmate:
		s.Phase = PhaseGameOver
		s.Result = engine.Checkmate
		s.Winner = mover
		status = StatusCheckmate
		log.Printf("Game %s: checkmate, %s wins", s.ID, mover)
	case engine.Stalemate:
		s.Phase = PhaseGameOver
		s.Result = engine.Stalemate
		status = StatusStalemate
		log.Printf("Game %s: stalemate", s.ID)
	default:
		s.Phase = turnPhase(next)
		if status == StatusNone && s.Board.IsInCheck(next) {
			status = StatusCheck
		}
		if status == StatusNone && !s.IsLocalTurn() {
			status = StatusWaitingPeer
		}
	}

	tc.Renderer.DrawBoard(s.Board, next)
	tc.Renderer.DrawSelection(engine.NoSquare, nil)
	tc.Renderer.DrawStatus(status)
}

// reset leaves a finished game for the connection menu.
func (tc *TurnController) reset() {
	s := tc.Session
	s.closeLink()
	s.Phase = PhaseConnectionSelect
	s.MenuIndex = modeIndex(s.Mode)
	s.Turn = TurnState{Selected: engine.NoSquare}
	s.Result = engine.Ongoing
	s.Winner = engine.NoColor

	tc.Renderer.DrawStatus(StatusNone)
	tc.Renderer.DrawMenu("Connection", modeItems(), s.MenuIndex)
}

func (tc *TurnController) hints() []engine.Square {
	s := tc.Session
	if s.Turn.Selected == engine.NoSquare {
		return nil
	}
	return s.Board.SafeMovesFrom(s.Turn.Selected)
}

// moveCursor steps one square, clamped to the board edges.
func moveCursor(sq engine.Square, ev Event) engine.Square {
	row, col := sq.Row(), sq.Col()
	switch ev {
	case EventUp:
		row--
	case EventDown:
		row++
	case EventLeft:
		col--
	case EventRight:
		col++
	}

	if next := engine.SquareAt(row, col); next != engine.NoSquare {
		return next
	}
	return sq
}

func moveMenu(index int, ev Event, n int) int {
	switch ev {
	case EventUp:
		if index > 0 {
			index--
		}
	case EventDown:
		if index < n-1 {
			index++
		}
	}
	return index
}

// homeSquare puts the cursor on the king pawn of the local side.
func homeSquare(c engine.Color) engine.Square {
	if c == engine.Black {
		return engine.SquareAt(1, 4)
	}
	return engine.SquareAt(6, 4)
}

func modeIndex(m transport.Mode) int {
	for i, mode := range transport.Modes {
		if mode == m {
			return i
		}
	}
	return 0
}

func modeItems() []string {
	items := make([]string, len(transport.Modes))
	for i, m := range transport.Modes {
		items[i] = m.String()
	}
	return items
}

func colorItems() []string {
	items := make([]string, len(colorMenu))
	for i, c := range colorMenu {
		items[i] = c.String()
	}
	return items
}
