package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv
const (
	EnvAssetDir     = "VI_PET_ASSETS"
	EnvDebug        = "VI_PET_DEBUG"
	EnvAudioEnabled = "VI_PET_AUDIO_ENABLED"
	EnvMasterVolume = "VI_PET_MASTER_VOLUME" // 0-100
	EnvSFXVolumes   = "VI_PET_SFX_VOLUMES"   // JSON object, sound name to 0.0-1.0
	EnvPixelScale   = "VI_PET_PIXEL_SCALE"
	EnvSeed         = "VI_PET_SEED"
)

// ApplyEnv overlays VI_PET_* variables; unparsable values are logged and skipped
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAssetDir); v != "" {
		c.AssetDir = v
	}

	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		} else {
			log.Printf("config: ignoring %s=%q: %v", EnvDebug, v, err)
		}
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			log.Printf("config: ignoring %s=%q: %v", EnvAudioEnabled, v, err)
		}
	}

	// Master volume is given in percent
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			vol := float64(n) / 100.0
			if vol < 0 {
				vol = 0
			}
			if vol > 1 {
				vol = 1
			}
			c.Audio.MasterVolume = vol
		} else {
			log.Printf("config: ignoring %s=%q: %v", EnvMasterVolume, v, err)
		}
	}

	if v := os.Getenv(EnvSFXVolumes); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if c.Audio.Volumes == nil {
				c.Audio.Volumes = make(map[string]float64, len(volumes))
			}
			for name, vol := range volumes {
				c.Audio.Volumes[name] = vol
			}
		} else {
			log.Printf("config: ignoring %s: %v", EnvSFXVolumes, err)
		}
	}

	if v := os.Getenv(EnvPixelScale); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Display.PixelScale = n
		} else {
			log.Printf("config: ignoring %s=%q", EnvPixelScale, v)
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		} else {
			log.Printf("config: ignoring %s=%q: %v", EnvSeed, v, err)
		}
	}
}
