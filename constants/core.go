package constants

import "time"

// Tick Loop Timing
const (
	// TickInterval is the main loop period (~20 ticks per second)
	TickInterval = 50 * time.Millisecond

	// FrameInterval is the minimum time between two animation frames
	FrameInterval = 50 * time.Millisecond

	// DecayPeriod is the wall time between two stat decay steps
	DecayPeriod = 60 * time.Second
)

// Input Timing
const (
	// DebounceIntervalMs is the minimum gap between accepted presses of one button
	DebounceIntervalMs = 200

	// DebounceInterval is DebounceIntervalMs as a duration
	DebounceInterval = DebounceIntervalMs * time.Millisecond

	// InputEventBufferSize is the capacity of the terminal event channel
	InputEventBufferSize = 64
)
