package config

import (
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-pet/audio"
	"github.com/lixenwraith/vi-pet/constants"
	"github.com/lixenwraith/vi-pet/engine"
	"github.com/lixenwraith/vi-pet/render"
)

// DisplayConfig sizes the virtual pixel display
type DisplayConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	PixelScale int `yaml:"pixel_scale"`
}

// TimingConfig holds loop and input intervals
type TimingConfig struct {
	Tick     time.Duration `yaml:"tick"`
	Frame    time.Duration `yaml:"frame"`
	Debounce time.Duration `yaml:"debounce"`
	Decay    time.Duration `yaml:"decay"`
}

// AudioSection mirrors audio.AudioConfig with config-file keys
type AudioSection struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	Volumes      map[string]float64 `yaml:"volumes"`
}

// Config is the full runtime configuration
type Config struct {
	Display      DisplayConfig     `yaml:"display"`
	Timing       TimingConfig      `yaml:"timing"`
	AssetDir     string            `yaml:"asset_dir"`
	Audio        AudioSection      `yaml:"audio"`
	Palette      render.PaletteHex `yaml:"palette"`
	InitialStats engine.Stats      `yaml:"initial_stats"`
	Seed         int64             `yaml:"seed"` // 0 seeds from the clock
	Debug        bool              `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      constants.DisplayWidth,
			Height:     constants.DisplayHeight,
			PixelScale: constants.DefaultPixelScale,
		},
		Timing: TimingConfig{
			Tick:     constants.TickInterval,
			Frame:    constants.FrameInterval,
			Debounce: constants.DebounceInterval,
			Decay:    constants.DecayPeriod,
		},
		AssetDir: "assets",
		Audio: AudioSection{
			Enabled:      true,
			MasterVolume: audio.DefaultAudioConfig().MasterVolume,
		},
		InitialStats: engine.DefaultStats(),
	}
}

// Load reads path over the defaults
// A missing file yields the defaults; a malformed one is an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects values the pet cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return errors.Errorf("display size %dx%d must be positive", c.Display.Width, c.Display.Height)
	case c.Display.PixelScale < 1:
		return errors.Errorf("pixel_scale %d must be at least 1", c.Display.PixelScale)
	case c.Timing.Tick <= 0 || c.Timing.Frame <= 0 || c.Timing.Decay <= 0:
		return errors.New("tick, frame and decay intervals must be positive")
	case c.Timing.Debounce < 0:
		return errors.New("debounce interval must not be negative")
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return errors.Errorf("master_volume %.2f outside [0,1]", c.Audio.MasterVolume)
	}
	for name := range c.Audio.Volumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			return errors.Errorf("unknown sound %q in audio volumes", name)
		}
	}
	return nil
}

// AudioConfig converts the audio section for the sound manager
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	for name, v := range c.Audio.Volumes {
		if s, ok := audio.ParseSoundType(name); ok {
			ac.SetVolume(s, v)
		}
	}
	return ac
}

// PetConfig converts display, timing and stats settings for the engine
func (c *Config) PetConfig() engine.PetConfig {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return engine.PetConfig{
		Width:         c.Display.Width,
		Height:        c.Display.Height,
		FrameInterval: c.Timing.Frame,
		InitialStats:  c.InitialStats,
		Rand:          rand.New(rand.NewSource(seed)),
	}
}
