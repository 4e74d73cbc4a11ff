package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-pet/constants"
)

// Side is where the marker appears relative to the pet
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Marker is the transient on-screen mess
type Marker struct {
	Visible bool
	X, Y    int
}

// AmbientScheduler owns the random appearance and clearing of the marker
type AmbientScheduler struct {
	clock  TimeProvider
	rng    *rand.Rand
	stats  *StatTracker
	anim   *AnimationEngine
	width  int
	height int

	marker Marker
	next   time.Time
}

// NewAmbientScheduler creates a hidden marker scheduled 60-120s ahead
func NewAmbientScheduler(clock TimeProvider, rng *rand.Rand, stats *StatTracker, anim *AnimationEngine, width, height int) *AmbientScheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	a := &AmbientScheduler{
		clock:  clock,
		rng:    rng,
		stats:  stats,
		anim:   anim,
		width:  width,
		height: height,
	}
	a.reschedule()
	return a
}

// randomDelay returns a uniform delay in [MarkerDelayMin, MarkerDelayMax]
func (a *AmbientScheduler) randomDelay() time.Duration {
	span := int64(constants.MarkerDelayMax - constants.MarkerDelayMin)
	return constants.MarkerDelayMin + time.Duration(a.rng.Int63n(span+1))
}

func (a *AmbientScheduler) reschedule() {
	a.next = a.clock.Now().Add(a.randomDelay())
}

// Tick shows the marker once its scheduled time has passed
// Returns true when the marker appeared on this call
func (a *AmbientScheduler) Tick() bool {
	if a.marker.Visible || a.clock.Now().Before(a.next) {
		return false
	}

	side := SideLeft
	if a.rng.Intn(2) == 1 {
		side = SideRight
	}
	a.marker = Marker{Visible: true}
	a.marker.X, a.marker.Y = a.position(side)
	log.Printf("marker appeared on the %s side at (%d, %d)", side, a.marker.X, a.marker.Y)
	return true
}

// position places the marker beside the pet, on the floor, inside the screen
func (a *AmbientScheduler) position(side Side) (int, int) {
	box := a.anim.Bounds()
	var x int
	if side == SideLeft {
		x = box.Min.X - constants.MarkerWidth - constants.MarkerMargin
		if x < 0 {
			x = constants.MarkerMargin
		}
	} else {
		x = box.Max.X + constants.MarkerMargin
		if x+constants.MarkerWidth > a.width {
			x = a.width - constants.MarkerWidth - constants.MarkerMargin
		}
	}
	y := a.height - constants.MarkerHeight - constants.MarkerMargin
	return x, y
}

// ClearedByUser hides the marker, rewards the pet and schedules the next mess
func (a *AmbientScheduler) ClearedByUser() {
	a.marker.Visible = false
	a.stats.Apply([]StatDelta{
		{Stat: StatHealth, Delta: constants.MarkerHealthGain},
		{Stat: StatHappiness, Delta: constants.MarkerHappinessGain},
	})
	a.reschedule()
	log.Printf("marker cleared, next appearance at %s", a.next.Format(time.TimeOnly))

	a.anim.Enqueue(AnimAngry1, constants.ClearReactionRepeats)
	a.anim.Enqueue(AnimAngry2, constants.ClearReactionRepeats)
}

// Marker returns the marker state
func (a *AmbientScheduler) Marker() Marker {
	return a.marker
}

// NextAppearance returns when the marker is due
func (a *AmbientScheduler) NextAppearance() time.Time {
	return a.next
}
