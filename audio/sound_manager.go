// Package audio synthesizes the game's sound effects and plays them through the speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/meghashyamc/stealth2d/logger"
	"github.com/meghashyamc/stealth2d/sim"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager mixes up to maxVoices sounds at once. Until Initialize succeeds every Play
// returns sim.NoChannel.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	maxVoices   int
	initialized bool
	logger      logger.Logger
}

func NewSoundManager(maxVoices int, log logger.Logger) *SoundManager {
	return &SoundManager{
		mixer:     &beep.Mixer{},
		maxVoices: maxVoices,
		logger:    log,
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// Play starts sound and returns its channel, or sim.NoChannel when audio is off or every
// voice is busy.
func (sm *SoundManager) Play(sound sim.Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return sim.NoChannel
	}

	streamer := newSound(sampleRate, sound)
	if streamer == nil {
		sm.logger.Warn("unknown sound", "sound", int(sound))
		return sim.NoChannel
	}

	speaker.Lock()
	channel := sm.addVoice(streamer)
	speaker.Unlock()

	if channel == sim.NoChannel {
		sm.logger.Debug("no free audio channel", "sound", sound.String())
	}
	return channel
}

// addVoice adds streamer to the mixer unless maxVoices are already playing. Finished sounds
// are dropped by the mixer, freeing their voice.
func (sm *SoundManager) addVoice(streamer beep.Streamer) int {
	channel := sm.mixer.Len()
	if channel >= sm.maxVoices {
		return sim.NoChannel
	}

	sm.mixer.Add(streamer)
	return channel
}
