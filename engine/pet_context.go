package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-pet/audio"
	"github.com/lixenwraith/vi-pet/constants"
	"github.com/lixenwraith/vi-pet/status"
)

// SoundPlayer plays short audio cues; audio.SoundManager satisfies it
type SoundPlayer interface {
	Play(sound audio.SoundType)
}

// PetConfig holds the construction parameters of a PetContext
type PetConfig struct {
	Width         int
	Height        int
	FrameInterval time.Duration
	InitialStats  Stats
	Rand          *rand.Rand
}

// DefaultPetConfig returns the Pico Display configuration
func DefaultPetConfig() PetConfig {
	return PetConfig{
		Width:         constants.DisplayWidth,
		Height:        constants.DisplayHeight,
		FrameInterval: constants.FrameInterval,
		InitialStats:  DefaultStats(),
	}
}

// PetContext is the single application-state aggregate
// It is created once at startup and owned by the tick loop
type PetContext struct {
	Clock     TimeProvider
	Catalog   *Catalog
	Stats     *StatTracker
	Animation *AnimationEngine
	Sleep     *SleepScheduler
	Ambient   *AmbientScheduler
	History   *SelectionHistory
	Cooldowns *Cooldowns
	Sounds    SoundPlayer
	Status    *status.Registry

	Width, Height int
}

// NewPetContext wires all core components together
func NewPetContext(clock TimeProvider, catalog *Catalog, cfg PetConfig) *PetContext {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = constants.DisplayWidth, constants.DisplayHeight
	}

	stats := NewStatTracker(cfg.InitialStats)
	anim := NewAnimationEngine(catalog, clock, cfg.Width, cfg.Height, cfg.FrameInterval)

	return &PetContext{
		Clock:     clock,
		Catalog:   catalog,
		Stats:     stats,
		Animation: anim,
		Sleep:     NewSleepScheduler(clock, stats, anim),
		Ambient:   NewAmbientScheduler(clock, cfg.Rand, stats, anim, cfg.Width, cfg.Height),
		History:   NewSelectionHistory(constants.SelectionWindow),
		Cooldowns: NewCooldowns(map[ActionID]time.Duration{
			ActionGoFestival:   constants.FestivalCooldown,
			ActionPainReliever: constants.PainRelieverCooldown,
		}),
		Status: status.NewRegistry(),
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// PlaySound forwards a cue to the sound player when one is attached
func (c *PetContext) PlaySound(sound audio.SoundType) {
	if c.Sounds != nil {
		c.Sounds.Play(sound)
	}
}
