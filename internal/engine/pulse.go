package engine

import "math/rand"

// BeatPulse drives the background pulse and periodic camera shake from the
// beat interval. Purely presentational: it reads nothing from the field or
// session and nothing gameplay-observable reads it back, so disabling it
// cannot change scoring or collision outcomes.
type BeatPulse struct {
	beatIntervalMs float64
	energy         float64
	rng            *rand.Rand

	overlay     float64
	peak        float64
	beats       int
	shakeMsLeft float64
	shakeMag    float64
}

// NewBeatPulse creates a pulse for the given beat interval and playlist
// energy. The RNG drives only the shake jitter and must be separate from
// the gameplay RNG so cosmetic effects never perturb spawn sequences.
func NewBeatPulse(beatIntervalMs, energy float64, rng *rand.Rand) *BeatPulse {
	return &BeatPulse{
		beatIntervalMs: beatIntervalMs,
		energy:         energy,
		rng:            rng,
		peak:           0.04 + energy*0.06,
	}
}

// OnBeat registers a beat: the overlay jumps to its peak and every 4th beat
// on an energetic playlist starts a camera shake.
func (p *BeatPulse) OnBeat() {
	p.overlay = p.peak
	p.beats++
	if p.beats%4 == 0 && p.energy > 0.5 {
		p.shakeMag = (p.energy - 0.5) * 6
		p.shakeMsLeft = 0.3 * p.beatIntervalMs
	}
}

// Advance fades the overlay linearly back to zero over 0.8 beat intervals
// and runs down the shake timer.
func (p *BeatPulse) Advance(dtMs float64) {
	if p.overlay > 0 {
		fade := p.peak / (0.8 * p.beatIntervalMs)
		p.overlay -= fade * dtMs
		if p.overlay < 0 {
			p.overlay = 0
		}
	}
	if p.shakeMsLeft > 0 {
		p.shakeMsLeft -= dtMs
		if p.shakeMsLeft < 0 {
			p.shakeMsLeft = 0
		}
	}
}

// Overlay returns the current translucency overlay intensity in [0, 0.1].
func (p *BeatPulse) Overlay() float64 {
	return p.overlay
}

// Beats returns the number of beats seen, used for beat-phased animation.
func (p *BeatPulse) Beats() int {
	return p.beats
}

// ShakeOffset returns the current camera jitter in screen cells.
// Zero when no shake is active.
func (p *BeatPulse) ShakeOffset() (dx, dy int) {
	if p.shakeMsLeft <= 0 || p.shakeMag <= 0 {
		return 0, 0
	}
	// Magnitude is in play-field pixels; a cell is roughly ten of those.
	cells := int(p.shakeMag/3) + 1
	return p.rng.Intn(2*cells+1) - cells, p.rng.Intn(2*cells+1) - cells
}
