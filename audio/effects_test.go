package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns all samples
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("Stream did not end within %d samples", limit)
	return nil
}

// TestOscillatorRange verifies every wave shape stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
		freq float64
	}{
		{"sine", WaveSine, 440},
		{"square", WaveSquare, 220},
		{"triangle", WaveTriangle, 330},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(tt.freq, 50*time.Millisecond, tt.wave, rate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected (100, true), got (%d, %v)", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Sample %d: channels differ", i)
				}
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got %v", osc.Err())
			}
		})
	}
}

// TestOscillatorSquareLevels verifies square wave only produces full-scale values
func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(220, 20*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Fatalf("Square sample %d = %f", i, v)
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440, duration, WaveSine, rate)
	samples := make([][2]float64, expected*2)
	n, _ := osc.Stream(samples)
	if n != expected {
		t.Errorf("Expected %d samples, got %d", expected, n)
	}

	n2, ok2 := osc.Stream(make([][2]float64, 10))
	if ok2 || n2 != 0 {
		t.Errorf("Expected (0, false) after duration, got (%d, %v)", n2, ok2)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	osc := NewOscillator(440, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, rate)

	out := drain(t, env, rate.N(time.Second))
	if len(out) != rate.N(duration) {
		t.Fatalf("Expected %d samples, got %d", rate.N(duration), len(out))
	}
	if out[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", out[0][0])
	}
	if last := math.Abs(out[len(out)-1][0]); last > 0.01 {
		t.Errorf("Expected near-silent tail, got %f", last)
	}
	mid := math.Abs(out[len(out)/2][0])
	if mid != 1 {
		t.Errorf("Expected full scale in sustain, got %f", mid)
	}
}

// TestSoundEffectsFinite verifies generated effects end and stay in range
func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 1

	for _, st := range []SoundType{SoundComplete, SoundLost} {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, cfg)
			if s == nil {
				t.Fatal("Expected streamer")
			}
			out := drain(t, s, cfg.SampleRate*2)
			if len(out) == 0 {
				t.Fatal("Expected samples")
			}
			peak := 0.0
			for _, smp := range out {
				peak = math.Max(peak, math.Abs(smp[0]))
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
			if peak > 1.0001 {
				t.Errorf("Peak %f exceeds full scale", peak)
			}
		})
	}

	if GetSoundEffect(SoundType(99), cfg) != nil {
		t.Error("Expected nil for unknown sound")
	}
}

// TestSilentVolume verifies zero volume mutes output
func TestSilentVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	out := drain(t, CreateLostSound(cfg), cfg.SampleRate)
	for i, smp := range out {
		if smp[0] != 0 {
			t.Fatalf("Sample %d not silent: %f", i, smp[0])
		}
	}
}
