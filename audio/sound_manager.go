package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pangram/constants"
)

// SoundManager plays completion feedback through the system speaker.
// All methods are safe to call before Initialize or after a failed
// Initialize; they become no-ops.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	cache       *soundCache
	initialized bool
}

// NewSoundManager creates a sound manager; nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		cache: newSoundCache(cfg),
	}
}

// Initialize opens the speaker. Disabled config leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := sm.cfg.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoAudioDevice, err)
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a sound effect on the mixer
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := sm.cache.get(soundType)
	if streamer == nil {
		return
	}

	// Mixer is read from the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// OnCompletionChange plays the chime for a completion transition
func (sm *SoundManager) OnCompletionChange(complete bool) {
	if complete {
		sm.Play(SoundComplete)
	} else {
		sm.Play(SoundLost)
	}
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}
