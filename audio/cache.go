package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores rendered effects so repeated transitions replay a buffer
// instead of resynthesizing
type soundCache struct {
	mu     sync.RWMutex
	cfg    *AudioConfig
	format beep.Format
	store  [soundTypeCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// get returns a fresh streamer over the cached buffer, generating on demand
func (c *soundCache) get(st SoundType) beep.Streamer {
	if st < 0 || int(st) >= int(soundTypeCount) {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()

	if buf == nil {
		c.mu.Lock()
		// Double-check after acquiring write lock
		if buf = c.store[st]; buf == nil {
			buf = beep.NewBuffer(c.format)
			buf.Append(GetSoundEffect(st, c.cfg))
			c.store[st] = buf
		}
		c.mu.Unlock()
	}

	return buf.Streamer(0, buf.Len())
}

// preload renders every effect up front
func (c *soundCache) preload() {
	for st := SoundType(0); st < soundTypeCount; st++ {
		c.get(st)
	}
}
