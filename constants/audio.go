package constants

import "time"

// Audio Defaults
const (
	// DefaultSampleRate is used when no sample rate is configured
	DefaultSampleRate = 44100

	// SpeakerBuffer is the speaker buffer length passed to speaker.Init
	SpeakerBuffer = 100 * time.Millisecond

	// DefaultMasterVolume is the master gain in [0, 1]
	DefaultMasterVolume = 0.5
)

// Complete Chime Timing (rising two-note chime when the pangram is reached)
const (
	CompleteNote1Duration = 90 * time.Millisecond
	CompleteNote2Duration = 320 * time.Millisecond
	CompleteAttack        = 5 * time.Millisecond
	CompleteNote1Release  = 40 * time.Millisecond
	CompleteNote2Release  = 240 * time.Millisecond
)

// Complete Chime Pitch
const (
	CompleteNote1Freq = 987.77  // B5
	CompleteNote2Freq = 1318.51 // E6
)

// Lost Tone Timing (short falling tone when a letter goes missing again)
const (
	LostSoundDuration = 120 * time.Millisecond
	LostSoundAttack   = 5 * time.Millisecond
	LostSoundRelease  = 60 * time.Millisecond
	LostSoundFreq     = 220.0
)
