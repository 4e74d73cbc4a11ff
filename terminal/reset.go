package terminal

import (
	"io"
	"os"
)

var (
	csiRIS           = []byte("\x1bc") // Reset to Initial State
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if the screen cannot be finalized normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
