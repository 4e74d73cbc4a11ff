package engine

import (
	"image"
	"log"
	"time"

	"github.com/lixenwraith/vi-pet/constants"
)

// Playback is the per-tick state of the current animation
type Playback struct {
	Animation  AnimationID
	Frame      int
	LastFrame  time.Time
	MaxRepeats int // plays per queue entry
	Repeats    int // completed plays of this entry
	X, Y       int // top-left of the frame, centered on the display
}

// Step advances p by at most one frame
// Returns finished=true when a bounded animation has used up its repeats and the
// caller must start the next queue entry
func Step(p Playback, d Descriptor, now time.Time, interval time.Duration) (Playback, bool) {
	if now.Sub(p.LastFrame) < interval {
		return p, false
	}
	p.LastFrame = now
	p.Frame++

	if p.Frame < d.FrameCount {
		return p, false
	}

	if d.Looping() {
		if d.FrameCount > 0 {
			p.Frame %= d.FrameCount
		} else {
			p.Frame = 0
		}
		return p, false
	}

	p.Repeats++
	if p.Repeats >= p.MaxRepeats {
		return p, true
	}
	p.Frame = 0
	return p, false
}

// AnimationEngine owns the current animation and the FIFO queue of pending ones
// Other components only go through Enqueue, PlayImmediately and Reset
type AnimationEngine struct {
	catalog  *Catalog
	clock    TimeProvider
	width    int
	height   int
	interval time.Duration

	playback Playback
	queue    []AnimationID
}

// NewAnimationEngine creates an engine idling on the default animation
func NewAnimationEngine(catalog *Catalog, clock TimeProvider, width, height int, interval time.Duration) *AnimationEngine {
	if interval <= 0 {
		interval = constants.FrameInterval
	}
	e := &AnimationEngine{
		catalog:  catalog,
		clock:    clock,
		width:    width,
		height:   height,
		interval: interval,
	}
	e.start(AnimDefault)
	return e
}

// Enqueue appends repeats copies of id
// When idle on default with nothing pending, playback starts immediately
func (e *AnimationEngine) Enqueue(id AnimationID, repeats int) {
	if repeats <= 0 {
		return
	}
	if _, ok := e.catalog.Lookup(id); !ok {
		log.Printf("animation %s not defined, not enqueued", id)
		return
	}

	wasEmpty := len(e.queue) == 0
	for i := 0; i < repeats; i++ {
		e.queue = append(e.queue, id)
	}
	log.Printf("enqueued animation %s x%d", id, repeats)

	if e.playback.Animation == AnimDefault && wasEmpty {
		e.next()
	}
}

// PlayImmediately discards the queue and starts id now
// repeats-1 further copies stay queued behind it
func (e *AnimationEngine) PlayImmediately(id AnimationID, repeats int) {
	if _, ok := e.catalog.Lookup(id); !ok {
		log.Printf("animation %s not defined, not played", id)
		return
	}
	if repeats < 1 {
		repeats = 1
	}

	e.queue = e.queue[:0]
	for i := 1; i < repeats; i++ {
		e.queue = append(e.queue, id)
	}
	e.start(id)
	log.Printf("playing animation %s immediately x%d", id, repeats)
}

// Reset clears the queue and restarts the default animation
func (e *AnimationEngine) Reset() {
	e.queue = e.queue[:0]
	e.start(AnimDefault)
}

// Advance moves the frame clock; called once per tick
func (e *AnimationEngine) Advance() {
	d, ok := e.catalog.Lookup(e.playback.Animation)
	if !ok {
		e.start(AnimDefault)
		return
	}

	var finished bool
	e.playback, finished = Step(e.playback, d, e.clock.Now(), e.interval)
	if finished {
		e.next()
	}
}

// next pops the queue head, or falls back to default once drained
func (e *AnimationEngine) next() {
	if len(e.queue) > 0 {
		id := e.queue[0]
		e.queue = e.queue[1:]
		e.start(id)
		return
	}
	if e.playback.Animation != AnimDefault {
		e.start(AnimDefault)
	}
}

func (e *AnimationEngine) start(id AnimationID) {
	d, ok := e.catalog.Lookup(id)
	if !ok {
		log.Printf("animation %s not defined", id)
		return
	}

	e.playback = Playback{
		Animation:  id,
		Frame:      0,
		LastFrame:  e.clock.Now(),
		MaxRepeats: 1,
		Repeats:    0,
		X:          (e.width - d.FrameWidth) / 2,
		Y:          (e.height-d.FrameHeight)/2 + constants.PetYOffset,
	}
}

// Current returns the playing animation
func (e *AnimationEngine) Current() AnimationID {
	return e.playback.Animation
}

// Playback returns a copy of the playback state
func (e *AnimationEngine) Playback() Playback {
	return e.playback
}

// Pending returns a copy of the queue
func (e *AnimationEngine) Pending() []AnimationID {
	return append([]AnimationID(nil), e.queue...)
}

// Descriptor returns the descriptor of the playing animation
func (e *AnimationEngine) Descriptor() Descriptor {
	d, _ := e.catalog.Lookup(e.playback.Animation)
	return d
}

// Bounds returns the on-screen box of the current frame
func (e *AnimationEngine) Bounds() image.Rectangle {
	d := e.Descriptor()
	return image.Rect(e.playback.X, e.playback.Y, e.playback.X+d.FrameWidth, e.playback.Y+d.FrameHeight)
}

// FrameSource resolves the asset and region of the current frame
func (e *AnimationEngine) FrameSource() (string, *image.Rectangle, bool) {
	return e.Descriptor().FrameSource(e.playback.Frame)
}
