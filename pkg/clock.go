package pkg

import (
	"time"
)

const (
	CursorThrottle  = 150 * time.Millisecond
	ConfirmDebounce = 300 * time.Millisecond
	TickInterval    = 10 * time.Millisecond
)

// Debouncer drops repeats of an event that arrive inside its window, so one
// physical press is never read twice.
type Debouncer struct {
	Windows map[Event]time.Duration

	last map[Event]time.Time
	now  func() time.Time
}

func NewDebouncer() *Debouncer {
	return &Debouncer{
		Windows: map[Event]time.Duration{
			EventUp:      CursorThrottle,
			EventDown:    CursorThrottle,
			EventLeft:    CursorThrottle,
			EventRight:   CursorThrottle,
			EventConfirm: ConfirmDebounce,
			EventBack:    ConfirmDebounce,
			EventReset:   ConfirmDebounce,
		},
		last: make(map[Event]time.Time),
		now:  time.Now,
	}
}

// Allow reports whether ev is a new edge and records it if so.
func (d *Debouncer) Allow(ev Event) bool {
	if ev == EventNone {
		return false
	}

	now := d.now()
	if last, ok := d.last[ev]; ok && now.Sub(last) < d.Windows[ev] {
		return false
	}
	d.last[ev] = now
	return true
}

func (d *Debouncer) Reset() {
	d.last = make(map[Event]time.Time)
}
