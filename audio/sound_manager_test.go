package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghashyamc/stealth2d/logger"
	"github.com/meghashyamc/stealth2d/sim"
)

var allSounds = []sim.Sound{
	sim.SoundShotFired,
	sim.SoundShotgunHit,
	sim.SoundEnemyKilled,
	sim.SoundAmmoPickedUp,
	sim.SoundKeyPickedUp,
	sim.SoundReload,
	sim.SoundGameOver,
}

func TestPlayWithoutInitialization(t *testing.T) {
	sm := NewSoundManager(8, logger.NewNop())

	for _, sound := range allSounds {
		assert.Equal(t, sim.NoChannel, sm.Play(sound))
	}
	sm.Cleanup()
}

func TestVoiceLimit(t *testing.T) {
	sm := NewSoundManager(2, logger.NewNop())

	assert.Equal(t, 0, sm.addVoice(newSound(sampleRate, sim.SoundReload)))
	assert.Equal(t, 1, sm.addVoice(newSound(sampleRate, sim.SoundReload)))
	assert.Equal(t, sim.NoChannel, sm.addVoice(newSound(sampleRate, sim.SoundReload)))
}

func TestFinishedSoundsFreeTheirVoice(t *testing.T) {
	sm := NewSoundManager(1, logger.NewNop())
	require.Equal(t, 0, sm.addVoice(newSound(sampleRate, sim.SoundShotgunHit)))

	// Drain the mixer past the end of the sound
	buf := make([][2]float64, 512)
	for i := 0; i < sampleRate.N(shapeDuration(sim.SoundShotgunHit))/len(buf)+2; i++ {
		sm.mixer.Stream(buf)
	}

	assert.Equal(t, 0, sm.addVoice(newSound(sampleRate, sim.SoundShotgunHit)))
}

func TestSoundsAreFiniteAndBounded(t *testing.T) {
	for _, sound := range allSounds {
		t.Run(sound.String(), func(t *testing.T) {
			streamer := newSound(sampleRate, sound)
			require.NotNil(t, streamer)

			buf := make([][2]float64, 1024)
			total := 0
			for {
				n, ok := streamer.Stream(buf)
				for _, sample := range buf[:n] {
					assert.False(t, math.IsNaN(sample[0]))
					assert.LessOrEqual(t, math.Abs(sample[0]), 1.0)
				}
				total += n
				if !ok {
					break
				}
			}

			assert.Equal(t, sampleRate.N(shapeDuration(sound)), total)
		})
	}
}

func TestUnknownSound(t *testing.T) {
	assert.Nil(t, newSound(sampleRate, sim.Sound(99)))
}

func shapeDuration(sound sim.Sound) time.Duration {
	return soundShapes[sound].duration
}
