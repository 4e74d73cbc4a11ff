package modes

import (
	"time"

	"github.com/lixenwraith/vi-pet/engine"
)

// Button is one of the four logical input buttons
type Button int

const (
	ButtonA Button = iota // Previous
	ButtonB               // Next
	ButtonY               // Confirm
	ButtonX               // Back
	buttonCount
)

// ButtonOrder is the order buttons are processed within a tick
var ButtonOrder = [buttonCount]Button{ButtonA, ButtonB, ButtonY, ButtonX}

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonY:
		return "Y"
	case ButtonX:
		return "X"
	default:
		return "?"
	}
}

// ButtonSet is a bitset of buttons
type ButtonSet uint8

// NewButtonSet builds a set from the given buttons
func NewButtonSet(buttons ...Button) ButtonSet {
	var s ButtonSet
	for _, b := range buttons {
		s = s.With(b)
	}
	return s
}

// With returns s plus b
func (s ButtonSet) With(b Button) ButtonSet {
	if b < 0 || b >= buttonCount {
		return s
	}
	return s | 1<<uint(b)
}

// Has reports whether b is in s
func (s ButtonSet) Has(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return s&(1<<uint(b)) != 0
}

// Empty reports whether no button is set
func (s ButtonSet) Empty() bool {
	return s == 0
}

// Debouncer filters button edges closer than the interval
// Only accepted presses refresh the per-button timestamp
type Debouncer struct {
	clock    engine.TimeProvider
	interval time.Duration
	last     [buttonCount]time.Time
	seen     [buttonCount]bool
}

// NewDebouncer creates a debouncer over the given clock
func NewDebouncer(clock engine.TimeProvider, interval time.Duration) *Debouncer {
	return &Debouncer{
		clock:    clock,
		interval: interval,
	}
}

// Accept reports whether a press of b counts, recording it if so
func (d *Debouncer) Accept(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	now := d.clock.Now()
	if d.seen[b] && now.Sub(d.last[b]) < d.interval {
		return false
	}
	d.last[b] = now
	d.seen[b] = true
	return true
}
