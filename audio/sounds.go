package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/meghashyamc/stealth2d/sim"
)

type soundShape struct {
	startFreq float64
	endFreq   float64
	duration  time.Duration
	decay     float64
	noise     float64
	volume    float64
}

var soundShapes = map[sim.Sound]soundShape{
	sim.SoundShotFired:    {startFreq: 180, endFreq: 60, duration: 250 * time.Millisecond, decay: 14, noise: 0.8, volume: 0.5},
	sim.SoundShotgunHit:   {startFreq: 400, endFreq: 200, duration: 80 * time.Millisecond, decay: 30, noise: 0.4, volume: 0.3},
	sim.SoundEnemyKilled:  {startFreq: 300, endFreq: 80, duration: 400 * time.Millisecond, decay: 6, noise: 0.3, volume: 0.4},
	sim.SoundAmmoPickedUp: {startFreq: 600, endFreq: 900, duration: 120 * time.Millisecond, decay: 10, volume: 0.3},
	sim.SoundKeyPickedUp:  {startFreq: 880, endFreq: 1320, duration: 200 * time.Millisecond, decay: 6, volume: 0.3},
	sim.SoundReload:       {startFreq: 1200, endFreq: 400, duration: 90 * time.Millisecond, decay: 25, noise: 0.6, volume: 0.3},
	sim.SoundGameOver:     {startFreq: 220, endFreq: 55, duration: 1200 * time.Millisecond, decay: 2, noise: 0.1, volume: 0.5},
}

// newSound returns a finite streamer for sound, or nil when the sound is unknown.
func newSound(sr beep.SampleRate, sound sim.Sound) beep.Streamer {
	shape, ok := soundShapes[sound]
	if !ok {
		return nil
	}

	generator := &toneGenerator{
		sr:        sr,
		startFreq: shape.startFreq,
		endFreq:   shape.endFreq,
		duration:  shape.duration,
		decay:     shape.decay,
		noise:     shape.noise,
		volume:    shape.volume,
		seed:      int64(sound) + 1,
	}

	return beep.Take(sr.N(shape.duration), generator)
}
