package engine

import (
	"fmt"
	"image"
)

// AnimationID identifies a catalog animation
type AnimationID int

const (
	AnimDefault AnimationID = iota
	AnimEat
	AnimHug
	AnimDrunk
	AnimTalk
	AnimAngry1
	AnimAngry2
	AnimSleep1
	AnimSleep2
	AnimLove1
	AnimLove2
	AnimGuitar1
	AnimGuitar2
	AnimGuitar3
	AnimGuitar4
	AnimGuitar5
	AnimGuitar6
	AnimGuitar7
	AnimAss
	AnimHappy2
	animationCount
)

// AnimAnnoyed is the penalty reaction played on stat and frequency limits
const AnimAnnoyed = AnimAss

var animationNames = [animationCount]string{
	AnimDefault: "default",
	AnimEat:     "eat",
	AnimHug:     "hug",
	AnimDrunk:   "drunk",
	AnimTalk:    "talk",
	AnimAngry1:  "angry_1",
	AnimAngry2:  "angry_2",
	AnimSleep1:  "sleep_1",
	AnimSleep2:  "sleep_2",
	AnimLove1:   "love_1",
	AnimLove2:   "love_2",
	AnimGuitar1: "guitar_1",
	AnimGuitar2: "guitar_2",
	AnimGuitar3: "guitar_3",
	AnimGuitar4: "guitar_4",
	AnimGuitar5: "guitar_5",
	AnimGuitar6: "guitar_6",
	AnimGuitar7: "guitar_7",
	AnimAss:     "ass",
	AnimHappy2:  "happy2",
}

// String returns the catalog name of the animation
func (a AnimationID) String() string {
	if a < 0 || a >= animationCount {
		return fmt.Sprintf("animation(%d)", int(a))
	}
	return animationNames[a]
}

// Valid reports whether a names a catalog entry
func (a AnimationID) Valid() bool {
	return a >= 0 && a < animationCount
}

// AnimationKind tells how frames are stored
type AnimationKind int

const (
	// KindSpriteSheet stores all frames side by side in one image
	KindSpriteSheet AnimationKind = iota
	// KindFrameSequence stores one image per frame
	KindFrameSequence
)

// Descriptor is an immutable catalog entry
type Descriptor struct {
	ID          AnimationID
	Kind        AnimationKind
	Sheet       string   // KindSpriteSheet only
	Frames      []string // KindFrameSequence only
	FrameWidth  int
	FrameHeight int
	FrameCount  int
}

// Looping reports whether the animation wraps forever instead of finishing
func (d Descriptor) Looping() bool {
	return d.ID == AnimDefault
}

// FrameSource resolves the asset and source region holding one frame
// A nil region means the whole asset is the frame
func (d Descriptor) FrameSource(frame int) (string, *image.Rectangle, bool) {
	if frame < 0 || frame >= d.FrameCount {
		return "", nil, false
	}

	switch d.Kind {
	case KindSpriteSheet:
		x := frame * d.FrameWidth
		src := image.Rect(x, 0, x+d.FrameWidth, d.FrameHeight)
		return d.Sheet, &src, true
	case KindFrameSequence:
		if frame >= len(d.Frames) {
			return "", nil, false
		}
		return d.Frames[frame], nil, true
	default:
		return "", nil, false
	}
}

// Assets lists every file the animation reads
func (d Descriptor) Assets() []string {
	if d.Kind == KindFrameSequence {
		return append([]string(nil), d.Frames...)
	}
	return []string{d.Sheet}
}

// Catalog maps every AnimationID to its descriptor
type Catalog struct {
	entries [animationCount]Descriptor
}

func sheet(id AnimationID, file string, w, h, frames int) Descriptor {
	return Descriptor{ID: id, Kind: KindSpriteSheet, Sheet: file, FrameWidth: w, FrameHeight: h, FrameCount: frames}
}

func sequence(id AnimationID, pattern string, w, h, frames int) Descriptor {
	files := make([]string, frames)
	for i := range files {
		files[i] = fmt.Sprintf(pattern, i+1)
	}
	return Descriptor{ID: id, Kind: KindFrameSequence, Frames: files, FrameWidth: w, FrameHeight: h, FrameCount: frames}
}

// DefaultCatalog returns the built-in pink bean animation set
func DefaultCatalog() *Catalog {
	c := &Catalog{}
	c.entries = [animationCount]Descriptor{
		AnimDefault: sheet(AnimDefault, "pink_bean_default.png", 82, 72, 4),
		AnimEat:     sequence(AnimEat, "eat/pink_bean_eat-%d.png", 112, 72, 16),
		AnimHug:     sheet(AnimHug, "pink_bean_ass.png", 56, 70, 2),
		AnimDrunk:   sheet(AnimDrunk, "pink_bean_drunk.png", 78, 84, 6),
		AnimTalk:    sheet(AnimTalk, "pink_bean_talk.png", 86, 80, 4),
		AnimAngry1:  sheet(AnimAngry1, "pink_bean_angry_1.png", 118, 96, 4),
		AnimAngry2:  sheet(AnimAngry2, "pink_bean_angry_2.png", 118, 96, 4),
		AnimSleep1:  sheet(AnimSleep1, "pink_bean_sleeping_1.png", 114, 64, 4),
		AnimSleep2:  sheet(AnimSleep2, "pink_bean_sleeping_2.png", 114, 64, 4),
		AnimLove1:   sheet(AnimLove1, "pink_bean_love_1.png", 156, 64, 4),
		AnimLove2:   sheet(AnimLove2, "pink_bean_love_2.png", 156, 64, 4),
		AnimGuitar1: sheet(AnimGuitar1, "pink_bean_guitar_1.png", 130, 86, 3),
		AnimGuitar2: sheet(AnimGuitar2, "pink_bean_guitar_2.png", 130, 86, 3),
		AnimGuitar3: sheet(AnimGuitar3, "pink_bean_guitar_3.png", 130, 86, 3),
		AnimGuitar4: sheet(AnimGuitar4, "pink_bean_guitar_4.png", 130, 86, 3),
		AnimGuitar5: sheet(AnimGuitar5, "pink_bean_guitar_5.png", 130, 86, 3),
		AnimGuitar6: sheet(AnimGuitar6, "pink_bean_guitar_6.png", 130, 86, 3),
		AnimGuitar7: sheet(AnimGuitar7, "pink_bean_guitar_7.png", 130, 86, 3),
		AnimAss:     sheet(AnimAss, "pink_bean_ass.png", 56, 70, 2),
		AnimHappy2:  sheet(AnimHappy2, "pink_bean_happy2.png", 98, 72, 2),
	}
	return c
}

// Lookup returns the descriptor for id
func (c *Catalog) Lookup(id AnimationID) (Descriptor, bool) {
	if !id.Valid() {
		return Descriptor{}, false
	}
	d := c.entries[id]
	if d.FrameCount <= 0 {
		return Descriptor{}, false
	}
	return d, true
}

// All returns every descriptor in ID order
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, 0, animationCount)
	for _, d := range c.entries {
		out = append(out, d)
	}
	return out
}

// GuitarSet lists the guitar solo frames in playing order
var GuitarSet = []AnimationID{
	AnimGuitar1, AnimGuitar2, AnimGuitar3, AnimGuitar4,
	AnimGuitar5, AnimGuitar6, AnimGuitar7,
}
