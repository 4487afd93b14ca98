package audio

import (
	"fmt"

	"github.com/lixenwraith/pangram/config"
	"github.com/lixenwraith/pangram/constants"
)

// AudioConfig controls playback
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at the default volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundComplete: 1.0,
			SoundLost:     0.6,
		},
	}
}

// FromSettings converts [audio] file settings; a zero sample rate keeps the default
func FromSettings(s config.Audio) *AudioConfig {
	ac := DefaultAudioConfig()
	ac.Enabled = s.Enabled
	ac.MasterVolume = float64(s.MasterVolume) / 100.0
	if s.SampleRate > 0 {
		ac.SampleRate = s.SampleRate
	}
	return ac
}

// Validate checks ranges
func (c *AudioConfig) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%w: master %.2f", ErrInvalidVolume, c.MasterVolume)
	}
	for i, v := range c.EffectVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %.2f", ErrInvalidVolume, SoundType(i), v)
		}
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	return nil
}
