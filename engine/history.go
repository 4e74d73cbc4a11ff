package engine

import "time"

// SelectionHistory keeps recent selection timestamps per action
// Each insert prunes entries older than the trailing window
type SelectionHistory struct {
	window  time.Duration
	entries map[ActionID][]time.Time
}

// NewSelectionHistory creates an empty history with the given window
func NewSelectionHistory(window time.Duration) *SelectionHistory {
	return &SelectionHistory{
		window:  window,
		entries: make(map[ActionID][]time.Time),
	}
}

// Record stores now under id and returns the count inside the window
func (h *SelectionHistory) Record(id ActionID, now time.Time) int {
	times := append(h.entries[id], now)

	kept := times[:0]
	for _, t := range times {
		if now.Sub(t) <= h.window {
			kept = append(kept, t)
		}
	}
	h.entries[id] = kept
	return len(kept)
}

// Count returns how many selections of id are stored
func (h *SelectionHistory) Count(id ActionID) int {
	return len(h.entries[id])
}

// Exceeds reports whether id was selected more than limit times in the window
func (h *SelectionHistory) Exceeds(id ActionID, limit int) bool {
	return h.Count(id) > limit
}

// Cooldowns gates restricted actions by time since their last use
type Cooldowns struct {
	durations map[ActionID]time.Duration
	lastUsed  map[ActionID]time.Time
}

// NewCooldowns creates cooldown tracking for the given per-action durations
func NewCooldowns(durations map[ActionID]time.Duration) *Cooldowns {
	d := make(map[ActionID]time.Duration, len(durations))
	for id, v := range durations {
		d[id] = v
	}
	return &Cooldowns{
		durations: d,
		lastUsed:  make(map[ActionID]time.Time),
	}
}

// Ready reports whether id may be used at now
// Actions without a cooldown, or never used, are always ready
func (c *Cooldowns) Ready(id ActionID, now time.Time) bool {
	d, restricted := c.durations[id]
	if !restricted {
		return true
	}
	last, used := c.lastUsed[id]
	if !used {
		return true
	}
	return now.Sub(last) >= d
}

// MarkUsed stores now as the last use of id
func (c *Cooldowns) MarkUsed(id ActionID, now time.Time) {
	if _, restricted := c.durations[id]; restricted {
		c.lastUsed[id] = now
	}
}

// LastUsed returns the last use of id
func (c *Cooldowns) LastUsed(id ActionID) (time.Time, bool) {
	t, ok := c.lastUsed[id]
	return t, ok
}

// Remaining returns how long id stays unavailable
func (c *Cooldowns) Remaining(id ActionID, now time.Time) time.Duration {
	if c.Ready(id, now) {
		return 0
	}
	return c.durations[id] - now.Sub(c.lastUsed[id])
}
