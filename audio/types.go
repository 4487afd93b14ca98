package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundComplete SoundType = iota // All 26 letters present
	SoundLost                      // A letter went missing after completion
	soundTypeCount
)

var soundNames = [...]string{
	SoundComplete: "complete",
	SoundLost:     "lost",
}

func (s SoundType) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrNoAudioDevice = errors.New("no audio output device available")
	ErrInvalidVolume = errors.New("volume outside [0, 1]")
)
