package engine

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pet/audio"
	"github.com/lixenwraith/vi-pet/constants"
)

// Renderer draws one frame from the current state
type Renderer interface {
	Render()
}

// Navigator consumes the buttons sampled since the previous tick
type Navigator interface {
	Navigate()
}

// ClockScheduler runs the single-threaded tick loop
// Per tick: render, navigate, sleep expiry, ambient marker, animation frame,
// then stat decay from accumulated wall time
type ClockScheduler struct {
	ctx       *PetContext
	renderer  Renderer
	navigator Navigator

	tickInterval time.Duration
	decayPeriod  time.Duration

	lastTick   time.Time
	decayAccum time.Duration

	tickCount  atomic.Uint64
	decayCount atomic.Uint64
}

// NewClockScheduler creates a scheduler; renderer and navigator may be nil
func NewClockScheduler(ctx *PetContext, renderer Renderer, navigator Navigator, tickInterval, decayPeriod time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = constants.TickInterval
	}
	if decayPeriod <= 0 {
		decayPeriod = constants.DecayPeriod
	}
	return &ClockScheduler{
		ctx:          ctx,
		renderer:     renderer,
		navigator:    navigator,
		tickInterval: tickInterval,
		decayPeriod:  decayPeriod,
		lastTick:     ctx.Clock.Now(),
	}
}

// Tick executes one loop iteration
func (cs *ClockScheduler) Tick() {
	if cs.renderer != nil {
		cs.renderer.Render()
	}
	if cs.navigator != nil {
		cs.navigator.Navigate()
	}

	if cs.ctx.Sleep.CheckExpiry() {
		cs.ctx.PlaySound(audio.SoundWake)
	}
	cs.ctx.Ambient.Tick()
	cs.ctx.Animation.Advance()

	cs.accumulateDecay()
	cs.tickCount.Add(1)
	cs.publish()
}

// publish mirrors the tick's end state into the status registry
func (cs *ClockScheduler) publish() {
	reg := cs.ctx.Status
	if reg == nil {
		return
	}

	stats := cs.ctx.Stats.Snapshot()
	for _, stat := range AllStats {
		reg.Ints.Get("stat." + strings.ToLower(stat.String())).Store(int64(stats.Get(stat)))
	}
	reg.Strings.Get("anim.current").Store(cs.ctx.Animation.Current().String())
	reg.Ints.Get("anim.pending").Store(int64(len(cs.ctx.Animation.Pending())))
	reg.Bools.Get("sleep.active").Store(cs.ctx.Sleep.IsSleeping())
	reg.Bools.Get("marker.visible").Store(cs.ctx.Ambient.Marker().Visible)
	reg.Ints.Get("loop.ticks").Store(int64(cs.tickCount.Load()))
	reg.Ints.Get("loop.decays").Store(int64(cs.decayCount.Load()))
}

// accumulateDecay runs one decay step per full decay period of elapsed wall time
// Several steps run after a stall so no period is lost
func (cs *ClockScheduler) accumulateDecay() {
	now := cs.ctx.Clock.Now()
	elapsed := now.Sub(cs.lastTick)
	cs.lastTick = now
	if elapsed <= 0 {
		return
	}

	cs.decayAccum += elapsed
	for cs.decayAccum >= cs.decayPeriod {
		cs.decayAccum -= cs.decayPeriod
		cs.ctx.Stats.Decay()
		cs.decayCount.Add(1)
	}
}

// Run ticks at the configured interval until ctx is done or poll returns false
// poll runs before every tick on the loop goroutine and drains pending input
func (cs *ClockScheduler) Run(ctx context.Context, poll func() bool) error {
	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if poll != nil && !poll() {
				return nil
			}
			cs.Tick()
		}
	}
}

// TickCount returns the number of executed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// DecayCount returns the number of executed decay steps
func (cs *ClockScheduler) DecayCount() uint64 {
	return cs.decayCount.Load()
}
