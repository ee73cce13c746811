package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// toneGenerator is a decaying sine sweep mixed with noise. It never ends by itself; wrap
// it in beep.Take.
type toneGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	duration  time.Duration
	// decay is the exponential envelope rate per second.
	decay  float64
	noise  float64
	volume float64
	pos    int
	seed   int64
	phase  float64
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr.N(g.duration))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		progress := math.Min(float64(g.pos)/total, 1)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Quick attack so the start does not click
		attack := math.Min(t/0.005, 1)
		envelope := attack * math.Exp(-t*g.decay)

		sample := g.volume * envelope * ((1-g.noise)*math.Sin(g.phase) + g.noise*noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
