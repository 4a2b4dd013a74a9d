package pkg

// Phase is the single authoritative state of the chess subsystem.
type Phase int

const (
	PhaseConnectionSelect Phase = iota
	PhaseColorMenu
	PhaseStartGame
	PhaseWhiteTurn
	PhaseBlackTurn
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseConnectionSelect:
		return "ConnectionSelect"
	case PhaseColorMenu:
		return "ColorMenu"
	case PhaseStartGame:
		return "StartGame"
	case PhaseWhiteTurn:
		return "WhiteTurn"
	case PhaseBlackTurn:
		return "BlackTurn"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// InGame reports whether moves are being played.
func (p Phase) InGame() bool {
	return p == PhaseWhiteTurn || p == PhaseBlackTurn
}

// Event is a discrete input edge from the buttons, keyboard or console.
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventConfirm
	EventBack
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventUp:
		return "Up"
	case EventDown:
		return "Down"
	case EventLeft:
		return "Left"
	case EventRight:
		return "Right"
	case EventConfirm:
		return "Confirm"
	case EventBack:
		return "Back"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Directional reports whether the event moves a cursor.
func (e Event) Directional() bool {
	return e >= EventUp && e <= EventRight
}
