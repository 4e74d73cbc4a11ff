package audio

import "github.com/lixenwraith/vi-pet/constants"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio settings with every cue enabled
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundMove:    0.3,
			SoundConfirm: 1.0,
			SoundAnnoyed: 0.8,
			SoundWake:    0.6,
		},
	}
}

// SetVolume stores a clamped effect volume
func (c *AudioConfig) SetVolume(sound SoundType, vol float64) {
	if c.EffectVolumes == nil {
		c.EffectVolumes = make(map[SoundType]float64)
	}
	c.EffectVolumes[sound] = clampUnit(vol)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// effectVolume combines the per-cue volume with the master volume
func (c *AudioConfig) effectVolume(sound SoundType) float64 {
	return c.EffectVolumes[sound] * c.MasterVolume
}
