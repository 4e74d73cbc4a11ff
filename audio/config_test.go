package audio

import "testing"

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	for s := SoundType(0); s < soundTypeCount; s++ {
		if _, ok := cfg.EffectVolumes[s]; !ok {
			t.Errorf("Expected volume for sound %s to be set", s)
		}
	}
}

// TestSetVolumeClamps verifies effect volumes stay in [0,1]
func TestSetVolumeClamps(t *testing.T) {
	cfg := &AudioConfig{}

	cfg.SetVolume(SoundMove, 1.7)
	cfg.SetVolume(SoundWake, -0.2)
	cfg.SetVolume(SoundConfirm, 0.25)

	if cfg.EffectVolumes[SoundMove] != 1 {
		t.Errorf("SoundMove volume = %f, want 1", cfg.EffectVolumes[SoundMove])
	}
	if cfg.EffectVolumes[SoundWake] != 0 {
		t.Errorf("SoundWake volume = %f, want 0", cfg.EffectVolumes[SoundWake])
	}
	if cfg.EffectVolumes[SoundConfirm] != 0.25 {
		t.Errorf("SoundConfirm volume = %f, want 0.25", cfg.EffectVolumes[SoundConfirm])
	}
}

// TestParseSoundType verifies config keys round through String
func TestParseSoundType(t *testing.T) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		got, ok := ParseSoundType(s.String())
		if !ok || got != s {
			t.Errorf("ParseSoundType(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseSoundType("bell"); ok {
		t.Error("unknown key must not parse")
	}
}
