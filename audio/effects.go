package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pangram/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length periodic wave
type oscillator struct {
	freq     float64
	phase    float64 // [0, 1)
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateCompleteSound builds the rising two-note chime played when the pangram is reached
func CreateCompleteSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.CompleteNote1Freq, constants.CompleteNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CompleteNote1Duration, constants.CompleteAttack, constants.CompleteNote1Release, rate)

	// Second note carries a softer octave-down triangle underneath
	n2 := NewOscillator(constants.CompleteNote2Freq, constants.CompleteNote2Duration, WaveSquare, rate)
	n2Body := NewOscillator(constants.CompleteNote2Freq/2, constants.CompleteNote2Duration, WaveTriangle, rate)
	n2Mixed := beep.Mix(newVolume(n2, 0.6), newVolume(n2Body, 0.4))
	n2Shaped := NewEnvelope(n2Mixed, constants.CompleteNote2Duration, constants.CompleteAttack, constants.CompleteNote2Release, rate)

	vol := cfg.EffectVolumes[SoundComplete] * cfg.MasterVolume
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol)
}

// CreateLostSound builds the short low tone played when completion is lost
func CreateLostSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sine, err := generators.SineTone(rate, constants.LostSoundFreq)
	if err != nil {
		// Frequency above Nyquist for a tiny sample rate
		sine = NewOscillator(constants.LostSoundFreq, constants.LostSoundDuration, WaveSine, rate)
	}
	tone := beep.Take(rate.N(constants.LostSoundDuration), sine)
	shaped := NewEnvelope(tone, constants.LostSoundDuration, constants.LostSoundAttack, constants.LostSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundLost] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundComplete:
		return CreateCompleteSound(cfg)
	case SoundLost:
		return CreateLostSound(cfg)
	default:
		return nil
	}
}
