package terminal

import (
	"bytes"
	"os"
	"testing"
)

func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"COLORTERM", "KITTY_WINDOW_ID", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(k, "")
	}
	t.Setenv("TERM", "xterm-256color")
}

func TestParseColorMode(t *testing.T) {
	clearTermEnv(t)

	tests := []struct {
		flag string
		want ColorMode
	}{
		{"256", ColorMode256},
		{"truecolor", ColorModeTrueColor},
		{"24bit", ColorModeTrueColor},
		{"auto", ColorMode256},
		{"", ColorMode256},
	}
	for _, tt := range tests {
		if got := ParseColorMode(tt.flag); got != tt.want {
			t.Errorf("ParseColorMode(%q) = %s, want %s", tt.flag, got, tt.want)
		}
	}
}

func TestDetectColorMode(t *testing.T) {
	clearTermEnv(t)

	t.Setenv("COLORTERM", "truecolor")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("COLORTERM=truecolor not detected")
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-direct")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("direct TERM not detected")
	}
}

func TestApplyColorMode(t *testing.T) {
	t.Setenv("TCELL_TRUECOLOR", "")
	t.Setenv("COLORTERM", "")

	ApplyColorMode(ColorMode256)
	if os.Getenv("TCELL_TRUECOLOR") != "disable" {
		t.Error("256 mode should disable tcell truecolor")
	}

	ApplyColorMode(ColorModeTrueColor)
	if os.Getenv("COLORTERM") != "truecolor" {
		t.Error("truecolor mode should set COLORTERM")
	}
	if _, set := os.LookupEnv("TCELL_TRUECOLOR"); set {
		t.Error("truecolor mode should clear TCELL_TRUECOLOR")
	}
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0, csiRIS} {
		if !bytes.Contains(buf.Bytes(), seq) {
			t.Errorf("missing sequence %q", seq)
		}
	}
}
