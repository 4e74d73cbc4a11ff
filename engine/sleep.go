package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-pet/constants"
)

// SleepScheduler owns the nap / long-sleep window and the wake transition
type SleepScheduler struct {
	clock TimeProvider
	stats *StatTracker
	anim  *AnimationEngine

	sleeping bool
	nap      bool
	endTime  time.Time
}

// NewSleepScheduler creates an awake scheduler
func NewSleepScheduler(clock TimeProvider, stats *StatTracker, anim *AnimationEngine) *SleepScheduler {
	return &SleepScheduler{
		clock: clock,
		stats: stats,
		anim:  anim,
	}
}

// StartSleep puts the pet to sleep for a nap or a full night
func (s *SleepScheduler) StartSleep(nap bool) {
	duration := constants.FullSleepDuration
	gain := constants.FullSleepSleepinessGain
	if nap {
		duration = constants.NapDuration
		gain = constants.NapSleepinessGain
	}

	s.sleeping = true
	s.nap = nap
	s.endTime = s.clock.Now().Add(duration)
	value := s.stats.Adjust(StatSleepiness, gain)
	log.Printf("pet started sleeping for %v, sleepiness now %d", duration, value)

	s.anim.Enqueue(AnimSleep1, constants.SleepAnimationRepeats)
	s.anim.Enqueue(AnimSleep2, constants.SleepAnimationRepeats)
}

// WakeUp ends sleep, drops pending sleep animations and restores default
func (s *SleepScheduler) WakeUp() {
	s.sleeping = false
	s.nap = false
	s.endTime = time.Time{}
	s.anim.Reset()
	log.Printf("pet woke up")
}

// CheckExpiry wakes the pet once the sleep window has passed
// Returns true when an automatic wake happened
func (s *SleepScheduler) CheckExpiry() bool {
	if !s.sleeping || s.clock.Now().Before(s.endTime) {
		return false
	}
	s.WakeUp()
	return true
}

// IsSleeping reports whether the pet sleeps
func (s *SleepScheduler) IsSleeping() bool {
	return s.sleeping
}

// IsNap reports whether the current sleep is a nap
func (s *SleepScheduler) IsNap() bool {
	return s.sleeping && s.nap
}

// EndTime returns the scheduled wake time, zero when awake
func (s *SleepScheduler) EndTime() time.Time {
	return s.endTime
}

// Remaining returns the time left until the automatic wake
func (s *SleepScheduler) Remaining() time.Duration {
	if !s.sleeping {
		return 0
	}
	if d := s.endTime.Sub(s.clock.Now()); d > 0 {
		return d
	}
	return 0
}
