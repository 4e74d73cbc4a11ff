package modes

import (
	"github.com/gdamore/tcell/v2"
)

// InputHandler turns terminal key events into button edges
// Edges gather between ticks and are consumed by Navigate
type InputHandler struct {
	menu    *MenuStateMachine
	pending ButtonSet
}

// NewInputHandler creates a new input handler feeding menu
func NewInputHandler(menu *MenuStateMachine) *InputHandler {
	return &InputHandler{menu: menu}
}

// HandleEvent processes a tcell event and returns false if the program should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	if key.Key() == tcell.KeyCtrlC {
		return false
	}
	if key.Key() == tcell.KeyRune && (key.Rune() == 'q' || key.Rune() == 'Q') {
		return false
	}

	if b, ok := ButtonForKey(key); ok {
		h.pending = h.pending.With(b)
	}
	return true
}

// ButtonForKey maps a key to its logical button
func ButtonForKey(ev *tcell.EventKey) (Button, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ButtonA, true
	case tcell.KeyDown:
		return ButtonB, true
	case tcell.KeyEnter:
		return ButtonY, true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ButtonX, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return ButtonA, true
		case 'b', 'B':
			return ButtonB, true
		case 'y', 'Y':
			return ButtonY, true
		case 'x', 'X':
			return ButtonX, true
		}
	}
	return 0, false
}

// Sample returns and clears the edges gathered since the last tick
func (h *InputHandler) Sample() ButtonSet {
	s := h.pending
	h.pending = 0
	return s
}

// Navigate feeds the tick's sample to the menu
func (h *InputHandler) Navigate() {
	h.menu.Navigate(h.Sample())
}
