package pkg

import (
	"github.com/google/uuid"
	"github.com/qnkhuat/linkchess/pkg/engine"
	"github.com/qnkhuat/linkchess/pkg/transport"
)

// TurnState counts plies and tracks the square a local player picked up.
type TurnState struct {
	Number   int
	Selected engine.Square
}

// ToMove is White on even plies and Black on odd ones.
func (t TurnState) ToMove() engine.Color {
	if t.Number%2 == 0 {
		return engine.White
	}
	return engine.Black
}

// Session owns everything one game mutates. It is only touched by the
// TurnController, from a single goroutine.
type Session struct {
	ID    uuid.UUID
	Board *engine.Board
	Turn  TurnState
	Phase Phase

	Mode       transport.Mode
	Link       transport.Transport
	LocalColor engine.Color

	Cursor    engine.Square
	MenuIndex int

	Result engine.Status
	Winner engine.Color
}

func NewSession() *Session {
	return &Session{
		ID:    uuid.New(),
		Board: engine.NewBoard(),
		Turn:  TurnState{Selected: engine.NoSquare},
		Phase: PhaseConnectionSelect,
		Mode:  transport.ModeLocal,
	}
}

// IsLocalTurn reports whether the side to move is played on this unit. In
// a local game both sides are.
func (s *Session) IsLocalTurn() bool {
	return s.Mode == transport.ModeLocal || s.Turn.ToMove() == s.LocalColor
}

// turnPhase maps the side to move to its phase.
func turnPhase(c engine.Color) Phase {
	if c == engine.Black {
		return PhaseBlackTurn
	}
	return PhaseWhiteTurn
}

// closeLink drops the active transport, if any.
func (s *Session) closeLink() {
	if s.Link == nil {
		return
	}
	s.Link.Close()
	s.Link = nil
}
