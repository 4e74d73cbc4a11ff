package audio

import "github.com/pkg/errors"

// SoundType represents the different cue sounds
type SoundType int

const (
	SoundMove    SoundType = iota // Cursor moved
	SoundConfirm                  // Action accepted
	SoundAnnoyed                  // Annoyed reaction
	SoundWake                     // Pet woke up
	soundTypeCount
)

// String returns the config key of the sound
func (s SoundType) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundConfirm:
		return "confirm"
	case SoundAnnoyed:
		return "annoyed"
	case SoundWake:
		return "wake"
	default:
		return "unknown"
	}
}

// ParseSoundType resolves a config key to a SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// ErrAudioDisabled is returned by Initialize when audio is turned off in config
var ErrAudioDisabled = errors.New("audio disabled by configuration")
