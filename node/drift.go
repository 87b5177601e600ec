// SPDX-License-Identifier: EPL-2.0

package node

import (
	"math"

	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/filter"
)

// Drift is a slowly changing deterministic modulator: every period it
// picks a new target in [low, high] from a hash of the elapsed-time
// counter and slews towards it with a one-pole low-pass. The "randomness"
// is a cheap reproducible hash, not a statistically rigorous generator:
// the same sample rate and timing always produce the same drift, and no
// RNG state or locking ever touches the audio thread. Scene character
// depends on this exact texture.
type Drift struct {
	low, high float32
	periodS   float32
	t         float32 // seconds since the last target pick
	target    float32
	lp        filter.OnePoleLP
}

// NewDrift returns a modulator picking a target in [low, high] every
// periodS seconds (clamped to >= 0.1), slewed by a low-pass at cutHz.
func NewDrift(low, high, periodS, cutHz, sr float32) Drift {
	d := Drift{
		low:     low,
		high:    high,
		periodS: max(periodS, 0.1),
		lp:      filter.NewOnePoleLP(max(cutHz, 0.01), sr),
	}
	d.pickTarget()
	return d
}

// SetSampleRate re-derives the slew filter for a new rate.
func (d *Drift) SetSampleRate(sr float32) {
	d.lp.SetSampleRate(sr)
}

func (d *Drift) pickTarget() {
	u := pseudoRand01(d.t)
	d.target = d.low + (d.high-d.low)*u
	d.t = 0
}

// Next advances one sample and returns the slewed value in [low, high].
func (d *Drift) Next(sr float32) float32 {
	d.t += 1 / sr
	if d.t >= d.periodS {
		d.pickTarget()
	}
	return d.lp.Process(d.target)
}

// pseudoRand01 maps a float time value to [0,1) deterministically.
// Hash-like sin/fract noise; sufficient for slow drift targets.
func pseudoRand01(x float32) float32 {
	n := math.Sin(float64(x)*12345.6789) * 43758.5453
	f := n - math.Floor(n)
	return float32(f)
}
