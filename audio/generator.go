package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Peak amplitude of every cue
const amplitude = 0.25

// attack is the fade-in that avoids clicks at note onset
const attack = 5 * time.Millisecond

// ToneGenerator produces a sine with a short attack and exponential decay
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	attackN int
}

// NewToneGenerator creates a decaying tone at freq Hz
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		attackN: sr.N(attack),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := amplitude * envelope(g.pos, g.attackN, t) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// ChirpGenerator sweeps linearly from one frequency to another over a duration
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	span     float64
	pos      int
	phase    float64
	attackN  int
}

// NewChirpGenerator creates a sweep from Hz to Hz over d; past d it holds the final frequency
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		span:    d.Seconds(),
		attackN: sr.N(attack),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := 1.0
		if g.span > 0 {
			progress = math.Min(t/g.span, 1)
		}
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the sweep stays continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := amplitude * envelope(g.pos, g.attackN, t) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// envelope ramps up over attackN samples then decays
func envelope(pos, attackN int, t float64) float64 {
	env := math.Exp(-t * 12)
	if pos < attackN {
		env *= float64(pos) / float64(attackN)
	}
	return env
}
