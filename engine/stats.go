package engine

import (
	"sync"

	"github.com/lixenwraith/vi-pet/constants"
)

// Stat identifies one of the four wellness counters
type Stat int

const (
	StatHunger Stat = iota
	StatSleepiness
	StatHappiness
	StatHealth
	statCount
)

// AllStats lists every stat in display order
var AllStats = [statCount]Stat{StatHunger, StatSleepiness, StatHappiness, StatHealth}

// String returns the display label of the stat
func (s Stat) String() string {
	switch s {
	case StatHunger:
		return "Hunger"
	case StatSleepiness:
		return "Sleep"
	case StatHappiness:
		return "Happiness"
	case StatHealth:
		return "Health"
	default:
		return "Unknown"
	}
}

// Stats is a value snapshot of the four counters
type Stats struct {
	Hunger     int `yaml:"hunger"`
	Sleepiness int `yaml:"sleepiness"`
	Happiness  int `yaml:"happiness"`
	Health     int `yaml:"health"`
}

// DefaultStats returns the starting value of every counter
func DefaultStats() Stats {
	return Stats{
		Hunger:     constants.StatInitial,
		Sleepiness: constants.StatInitial,
		Happiness:  constants.StatInitial,
		Health:     constants.StatInitial,
	}
}

// Get returns the value of one stat
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatHunger:
		return s.Hunger
	case StatSleepiness:
		return s.Sleepiness
	case StatHappiness:
		return s.Happiness
	case StatHealth:
		return s.Health
	default:
		return 0
	}
}

// StatDelta is a signed change to one stat
type StatDelta struct {
	Stat  Stat
	Delta int
}

// ClampStat saturates v into [StatMin, StatMax]
func ClampStat(v int) int {
	if v < constants.StatMin {
		return constants.StatMin
	}
	if v > constants.StatMax {
		return constants.StatMax
	}
	return v
}

// StatTracker owns the four bounded wellness counters
// All mutations hold one mutex so a decay step never interleaves with a
// partially applied multi-stat action
type StatTracker struct {
	mu     sync.Mutex
	values [statCount]int
}

// NewStatTracker creates a tracker seeded with initial values (clamped)
func NewStatTracker(initial Stats) *StatTracker {
	t := &StatTracker{}
	for _, stat := range AllStats {
		t.values[stat] = ClampStat(initial.Get(stat))
	}
	return t
}

// Decay lowers every stat by one step, floored at StatMin
func (t *StatTracker) Decay() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.values {
		t.values[i] = ClampStat(t.values[i] - constants.DecayStep)
	}
}

// Adjust applies a clamped delta and returns the new value
func (t *StatTracker) Adjust(stat Stat, delta int) int {
	if stat < 0 || stat >= statCount {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.values[stat] = ClampStat(t.values[stat] + delta)
	return t.values[stat]
}

// Apply applies all deltas as one critical section
func (t *StatTracker) Apply(deltas []StatDelta) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, d := range deltas {
		if d.Stat < 0 || d.Stat >= statCount {
			continue
		}
		t.values[d.Stat] = ClampStat(t.values[d.Stat] + d.Delta)
	}
}

// Get returns the current value of one stat
func (t *StatTracker) Get(stat Stat) int {
	if stat < 0 || stat >= statCount {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.values[stat]
}

// Snapshot returns a copy of all four counters
func (t *StatTracker) Snapshot() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Stats{
		Hunger:     t.values[StatHunger],
		Sleepiness: t.values[StatSleepiness],
		Happiness:  t.values[StatHappiness],
		Health:     t.values[StatHealth],
	}
}

// AnyOver reports whether any of the given stats is strictly above threshold
func (t *StatTracker) AnyOver(threshold int, stats ...Stat) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, stat := range stats {
		if stat < 0 || stat >= statCount {
			continue
		}
		if t.values[stat] > threshold {
			return true
		}
	}
	return false
}

// AnyOverAll reports whether any of the four stats is strictly above threshold
func (t *StatTracker) AnyOverAll(threshold int) bool {
	return t.AnyOver(threshold, AllStats[:]...)
}
