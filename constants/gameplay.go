package constants

import "time"

// Stat Bounds
const (
	// StatMin is the floor of every wellness stat
	StatMin = 0

	// StatMax is the ceiling of every wellness stat
	StatMax = 100

	// StatInitial is the value every stat starts at
	StatInitial = 100

	// StatOverLimit is the strict threshold above which a stat counts as saturated
	StatOverLimit = 90

	// DecayStep is the amount each stat loses per decay period
	DecayStep = 1
)

// Selection Tracking
const (
	// SelectionWindow is the trailing window kept in the selection history
	SelectionWindow = 60 * time.Second

	// SelectionSpamLimit is how many selections inside the window are tolerated
	// A selection count above this triggers the annoyed reaction
	SelectionSpamLimit = 2
)

// Action Cooldowns
const (
	// FestivalCooldown gates the "Go Festival" entertainment option
	FestivalCooldown = 120 * time.Second

	// PainRelieverCooldown gates the "Ibuprofeno" health option (8 hours)
	PainRelieverCooldown = 28800 * time.Second
)

// Reaction Animations
const (
	// AnnoyedRepeats is the repeat count of the annoyed reaction on stat/frequency limits
	AnnoyedRepeats = 3

	// ClearReactionRepeats is the repeat count of each clear reaction animation
	ClearReactionRepeats = 2
)

// Sleep Timing
const (
	// NapDuration is the sleep window granted by a nap
	NapDuration = 20 * time.Minute

	// NapSleepinessGain is the sleepiness restored by a nap
	NapSleepinessGain = 20

	// FullSleepDuration is the sleep window granted by going to sleep
	FullSleepDuration = 6 * time.Hour

	// FullSleepSleepinessGain is the sleepiness restored by a full sleep
	FullSleepSleepinessGain = 60

	// SleepAnimationRepeats is the repeat count of each sleep animation variant
	SleepAnimationRepeats = 20
)

// Ambient Marker
const (
	// MarkerDelayMin is the shortest delay before the marker appears
	MarkerDelayMin = 60 * time.Second

	// MarkerDelayMax is the longest delay before the marker appears
	MarkerDelayMax = 120 * time.Second

	// MarkerWidth is the marker image width in pixels
	MarkerWidth = 31

	// MarkerHeight is the marker image height in pixels
	MarkerHeight = 29

	// MarkerMargin keeps the marker off the pet and the screen edges
	MarkerMargin = 5

	// MarkerHealthGain is the health granted by clearing the marker
	MarkerHealthGain = 10

	// MarkerHappinessGain is the happiness granted by clearing the marker
	MarkerHappinessGain = 5

	// MarkerAsset is the image drawn for the marker
	MarkerAsset = "poop.png"
)
