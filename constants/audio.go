package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Move Sound Timing
const (
	MoveSoundDuration = 40 * time.Millisecond
	MoveSoundAttack   = 2 * time.Millisecond
	MoveSoundRelease  = 20 * time.Millisecond
)

// Confirm (Bell) Sound Timing
const (
	ConfirmSoundDuration           = 400 * time.Millisecond
	ConfirmSoundAttack             = 5 * time.Millisecond
	ConfirmSoundFundamentalRelease = 350 * time.Millisecond
	ConfirmSoundOvertoneRelease    = 150 * time.Millisecond
)

// Annoyed (Buzz) Sound Timing
const (
	AnnoyedSoundDuration = 150 * time.Millisecond
	AnnoyedSoundAttack   = 5 * time.Millisecond
	AnnoyedSoundRelease  = 40 * time.Millisecond
)

// Wake (Chime) Sound Timing
const (
	WakeSoundNote1Duration = 80 * time.Millisecond
	WakeSoundNote2Duration = 280 * time.Millisecond
	WakeSoundAttack        = 5 * time.Millisecond
	WakeSoundNote1Release  = 40 * time.Millisecond
	WakeSoundNote2Release  = 200 * time.Millisecond
)
