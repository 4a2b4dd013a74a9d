package transport

import "github.com/qnkhuat/linkchess/pkg/engine"

// Local is the transport of a single-unit game: both colors are played on the
// same board, so nothing is sent and nothing arrives.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Send(m engine.Move) error {
	return nil
}

func (l *Local) TryReceive() (engine.Move, bool) {
	return engine.Move{}, false
}

func (l *Local) Close() error {
	return nil
}
