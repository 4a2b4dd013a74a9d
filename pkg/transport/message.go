package transport

import (
	"errors"
	"fmt"

	"github.com/qnkhuat/linkchess/pkg/engine"
)

type MessageType byte

// The values are the tag byte sent on the wire and must not change.
const (
	TypeMessageMove MessageType = 'M'
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageMove:
		return "TypeMessageMove"
	default:
		return "Unknown MessageType"
	}
}

// FrameSize is the length of an encoded move: tag, from, to.
const FrameSize = 3

var (
	ErrShortFrame  = errors.New("transport: short frame")
	ErrBadTag      = errors.New("transport: unexpected message tag")
	ErrSquareRange = errors.New("transport: square out of range")
)

type MessageMove struct {
	From uint8
	To   uint8
}

func NewMessageMove(m engine.Move) MessageMove {
	return MessageMove{From: uint8(m.From), To: uint8(m.To)}
}

func (m MessageMove) Type() MessageType {
	return TypeMessageMove
}

func (m MessageMove) Move() engine.Move {
	return engine.Move{From: engine.Square(m.From), To: engine.Square(m.To)}
}

func (m MessageMove) Encode() []byte {
	return []byte{byte(m.Type()), m.From, m.To}
}

// DecodeMove parses one frame. Only the first FrameSize bytes are read.
func DecodeMove(b []byte) (MessageMove, error) {
	if len(b) < FrameSize {
		return MessageMove{}, ErrShortFrame
	}
	if MessageType(b[0]) != TypeMessageMove {
		return MessageMove{}, fmt.Errorf("%w: 0x%02x", ErrBadTag, b[0])
	}

	m := MessageMove{From: b[1], To: b[2]}
	if m.From >= engine.NumSquares || m.To >= engine.NumSquares {
		return MessageMove{}, fmt.Errorf("%w: %d -> %d", ErrSquareRange, m.From, m.To)
	}
	return m, nil
}
