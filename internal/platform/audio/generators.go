package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// Sound shapes
const (
	shootFreq     = 780.0
	shootAttack   = 10 * time.Millisecond
	shootDecay    = 180 * time.Millisecond
	shootDuration = 200 * time.Millisecond
	shootPeak     = 0.18
	shootFloor    = 0.001

	explosionDuration = 250 * time.Millisecond
	explosionGain     = 0.2

	noteStep    = 220 * time.Millisecond
	noteAttack  = 10 * time.Millisecond
	noteRelease = 200 * time.Millisecond
	notePeak    = 0.06

	silence = 0.0001
)

// melody is the background loop; zero is a rest.
var melody = []float64{440, 0, 440, 0, 523, 0, 660, 0}

// expRamp interpolates exponentially from a to b; frac is clamped to [0, 1].
func expRamp(a, b, frac float64) float64 {
	frac = math.Max(0, math.Min(1, frac))
	return a * math.Pow(b/a, frac)
}

// ShootGenerator is a short square-wave blip with a fast attack and an
// exponential decay. It ends after 200ms.
type ShootGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64
}

// NewShootGenerator creates a shoot sound generator.
func NewShootGenerator(sr beep.SampleRate) *ShootGenerator {
	return &ShootGenerator{sr: sr, total: sr.N(shootDuration)}
}

func (g *ShootGenerator) envelope(t time.Duration) float64 {
	switch {
	case t < shootAttack:
		return expRamp(silence, shootPeak, float64(t)/float64(shootAttack))
	case t < shootDecay:
		return expRamp(shootPeak, shootFloor, float64(t-shootAttack)/float64(shootDecay-shootAttack))
	default:
		return shootFloor
	}
}

func (g *ShootGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		val := 1.0
		if g.phase >= 0.5 {
			val = -1.0
		}
		val *= g.envelope(g.sr.D(g.pos))

		samples[i][0] = val
		samples[i][1] = val

		g.phase += shootFreq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ShootGenerator) Err() error { return nil }

// NoiseBurstGenerator is white noise fading linearly to silence over 250ms.
type NoiseBurstGenerator struct {
	rng   *rand.Rand
	pos   int
	total int
}

// NewNoiseBurstGenerator creates an explosion generator seeded with seed.
func NewNoiseBurstGenerator(sr beep.SampleRate, seed uint64) *NoiseBurstGenerator {
	return &NoiseBurstGenerator{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		total: sr.N(explosionDuration),
	}
}

func (g *NoiseBurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		fade := 1 - float64(g.pos)/float64(g.total)
		val := (g.rng.Float64()*2 - 1) * fade * explosionGain

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseBurstGenerator) Err() error { return nil }

// ChiptuneGenerator loops the melody as sawtooth notes, one step every
// 220ms. It never ends; stop it by draining its Ctrl.
type ChiptuneGenerator struct {
	sr    beep.SampleRate
	pos   int
	step  int
	phase float64
}

// NewChiptuneGenerator creates the background music generator.
func NewChiptuneGenerator(sr beep.SampleRate) *ChiptuneGenerator {
	return &ChiptuneGenerator{sr: sr, step: sr.N(noteStep)}
}

// note returns the frequency and envelope gain at sample pos.
func (g *ChiptuneGenerator) note(pos int) (freq, gain float64) {
	idx := (pos / g.step) % len(melody)
	freq = melody[idx]
	if freq == 0 {
		return 0, 0
	}

	t := g.sr.D(pos % g.step)
	switch {
	case t < noteAttack:
		gain = expRamp(silence, notePeak, float64(t)/float64(noteAttack))
	case t < noteRelease:
		gain = expRamp(notePeak, silence, float64(t-noteAttack)/float64(noteRelease-noteAttack))
	}
	return freq, gain
}

func (g *ChiptuneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq, gain := g.note(g.pos)

		val := 0.0
		if freq > 0 {
			val = 2 * (g.phase - 0.5) * gain
			g.phase += freq / float64(g.sr)
			g.phase -= math.Floor(g.phase)
		} else {
			g.phase = 0
		}

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *ChiptuneGenerator) Err() error { return nil }
