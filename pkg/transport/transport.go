package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qnkhuat/linkchess/pkg/engine"
)

// Transport carries moves between two units. TryReceive never blocks.
type Transport interface {
	Send(m engine.Move) error
	TryReceive() (engine.Move, bool)
	Close() error
}

type Mode int

const (
	ModeWired Mode = iota
	ModeRadio
	ModeLocal
)

// Modes lists the connection modes in menu order.
var Modes = []Mode{ModeWired, ModeRadio, ModeLocal}

var ErrUnknownMode = errors.New("transport: unknown connection mode")

func (m Mode) String() string {
	switch m {
	case ModeWired:
		return "Wired"
	case ModeRadio:
		return "Radio"
	case ModeLocal:
		return "Local"
	default:
		return "Unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
