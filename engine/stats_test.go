package engine

import (
	"sync"
	"testing"
)

// TestAdjustClamps verifies Adjust always lands in [0,100]
func TestAdjustClamps(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		delta    int
		expected int
	}{
		{"Increase within range", 50, 20, 70},
		{"Saturate at max", 95, 20, 100},
		{"Huge positive", 0, 1 << 30, 100},
		{"Floor at min", 5, -10, 0},
		{"Huge negative", 100, -(1 << 30), 0},
		{"Zero delta", 42, 0, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewStatTracker(Stats{Hunger: tt.start})
			got := tracker.Adjust(StatHunger, tt.delta)
			if got != tt.expected {
				t.Errorf("Adjust(%d, %d) = %d, want %d", tt.start, tt.delta, got, tt.expected)
			}
			if v := tracker.Get(StatHunger); v != tt.expected {
				t.Errorf("Get after Adjust = %d, want %d", v, tt.expected)
			}
		})
	}
}

// TestAdjustClampsEverySign sweeps deltas across both signs
func TestAdjustClampsEverySign(t *testing.T) {
	for start := 0; start <= 100; start += 25 {
		for delta := -250; delta <= 250; delta += 17 {
			tracker := NewStatTracker(Stats{Health: start})
			got := tracker.Adjust(StatHealth, delta)
			if got < 0 || got > 100 {
				t.Fatalf("Adjust(%d, %d) = %d, outside [0,100]", start, delta, got)
			}
		}
	}
}

// TestNewStatTrackerClampsInitial verifies out-of-range seeds are clamped
func TestNewStatTrackerClampsInitial(t *testing.T) {
	tracker := NewStatTracker(Stats{Hunger: 150, Sleepiness: -3, Happiness: 50, Health: 100})
	snap := tracker.Snapshot()
	expected := Stats{Hunger: 100, Sleepiness: 0, Happiness: 50, Health: 100}
	if snap != expected {
		t.Errorf("Snapshot() = %+v, want %+v", snap, expected)
	}
}

// TestDecayFloorsAtZero verifies decay lowers by one and never goes negative
func TestDecayFloorsAtZero(t *testing.T) {
	tracker := NewStatTracker(Stats{Hunger: 10, Sleepiness: 1, Happiness: 0, Health: 100})
	tracker.Decay()

	expected := Stats{Hunger: 9, Sleepiness: 0, Happiness: 0, Health: 99}
	if snap := tracker.Snapshot(); snap != expected {
		t.Errorf("after Decay = %+v, want %+v", snap, expected)
	}

	tracker.Decay()
	if v := tracker.Get(StatSleepiness); v != 0 {
		t.Errorf("Sleepiness after second Decay = %d, want 0", v)
	}
}

// TestAnyOverStrictThreshold verifies the > comparison and subset selection
func TestAnyOverStrictThreshold(t *testing.T) {
	tracker := NewStatTracker(Stats{Hunger: 90, Sleepiness: 91, Happiness: 10, Health: 10})

	if tracker.AnyOver(90, StatHunger) {
		t.Error("Hunger at exactly 90 must not count as over")
	}
	if !tracker.AnyOver(90, StatHunger, StatSleepiness) {
		t.Error("Sleepiness at 91 must count as over")
	}
	if tracker.AnyOver(90, StatHappiness, StatHealth) {
		t.Error("Happiness/Health at 10 must not count as over")
	}
	if !tracker.AnyOverAll(90) {
		t.Error("AnyOverAll must see Sleepiness at 91")
	}
	if tracker.AnyOver(90) {
		t.Error("empty subset must never be over")
	}
}

// TestApplyIsAtomicAgainstDecay runs decay concurrently with multi-stat applies
func TestApplyIsAtomicAgainstDecay(t *testing.T) {
	tracker := NewStatTracker(Stats{Hunger: 50, Sleepiness: 50, Happiness: 50, Health: 50})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			tracker.Decay()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			tracker.Apply([]StatDelta{{StatHunger, 1}, {StatHealth, -1}})
		}
	}()
	wg.Wait()

	snap := tracker.Snapshot()
	for _, stat := range AllStats {
		if v := snap.Get(stat); v < 0 || v > 100 {
			t.Errorf("%s = %d outside [0,100]", stat, v)
		}
	}
}

// TestStatString verifies display labels
func TestStatString(t *testing.T) {
	tests := []struct {
		stat     Stat
		expected string
	}{
		{StatHunger, "Hunger"},
		{StatSleepiness, "Sleep"},
		{StatHappiness, "Happiness"},
		{StatHealth, "Health"},
		{Stat(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.stat.String(); got != tt.expected {
			t.Errorf("Stat(%d).String() = %q, want %q", tt.stat, got, tt.expected)
		}
	}
}
