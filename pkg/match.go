package pkg

import (
	"context"
	"time"
)

// Runner is the outer polling loop. Every tick it takes at most one input
// event, filters it through the debouncer and advances the controller.
// Typed input that has no key bounce runs without a Debouncer.
type Runner struct {
	Controller *TurnController
	Input      <-chan Event
	Debouncer  *Debouncer
	Interval   time.Duration
}

func NewRunner(tc *TurnController, input <-chan Event) *Runner {
	return &Runner{
		Controller: tc,
		Input:      input,
		Debouncer:  NewDebouncer(),
		Interval:   TickInterval,
	}
}

// Run ticks until ctx is cancelled or the input is closed.
func (r *Runner) Run(ctx context.Context) error {
	r.Controller.Redraw()

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()
	defer r.Controller.Session.closeLink()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !r.Step() {
				return nil
			}
		}
	}
}

// Step runs one tick. It returns false once the input is closed.
func (r *Runner) Step() bool {
	ev := EventNone
	select {
	case e, ok := <-r.Input:
		if !ok {
			return false
		}
		if r.Debouncer == nil || r.Debouncer.Allow(e) {
			ev = e
		}
	default:
	}

	r.Controller.Tick(ev)
	return true
}
