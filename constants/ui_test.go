package constants

import (
	"testing"
	"time"
)

// TestIconColumnsFitDisplay verifies both icon columns stay inside the framebuffer
func TestIconColumnsFitDisplay(t *testing.T) {
	lastY := IconTopY + (IconsPerColumn-1)*IconSpacingY
	if lastY >= DisplayHeight {
		t.Errorf("last icon y %d outside display height %d", lastY, DisplayHeight)
	}
	if DisplayWidth-IconRightInset <= IconLeftX {
		t.Errorf("right icon column overlaps left column")
	}
	if IconsPerColumn*2 != IconCount {
		t.Errorf("icon columns hold %d icons, want %d", IconsPerColumn*2, IconCount)
	}
}

// TestCooldownDurations verifies the cooldown values in seconds
func TestCooldownDurations(t *testing.T) {
	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"Festival", FestivalCooldown, 2 * time.Minute},
		{"Pain reliever", PainRelieverCooldown, 8 * time.Hour},
		{"Nap", NapDuration, 1200 * time.Second},
		{"Full sleep", FullSleepDuration, 21600 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

// TestMarkerDelayRange verifies the marker delay window is non-empty
func TestMarkerDelayRange(t *testing.T) {
	if MarkerDelayMax <= MarkerDelayMin {
		t.Errorf("MarkerDelayMax %v must exceed MarkerDelayMin %v", MarkerDelayMax, MarkerDelayMin)
	}
}
