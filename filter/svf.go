// SPDX-License-Identifier: EPL-2.0

package filter

import "github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"

// Mode selects an SVF output tap.
type Mode uint8

const (
	Lowpass Mode = iota
	Highpass
	Bandpass
	Notch
)

// SVF is a state-variable filter in the topology-preserving-transform
// formulation (Zavalishin): g = tan(pi*fc/sr), r = 1/(2Q), with two
// integrator memories. All four taps fall out of a single state update.
type SVF struct {
	sr  float32
	cut float32
	q   float32

	// derived
	g float32
	r float32

	// integrator states
	ic1eq, ic2eq float32
}

// NewSVF returns a filter with the given cutoff, Q and sample rate.
// Q is clamped away from zero to avoid infinite resonance.
func NewSVF(cutHz, q, sr float32) SVF {
	f := SVF{
		sr:  max(sr, 1),
		cut: max(cutHz, 0),
		q:   max(q, 1e-4),
	}
	f.recalc()
	return f
}

// SetSampleRate re-derives g for a new rate.
func (f *SVF) SetSampleRate(sr float32) {
	f.sr = max(sr, 1)
	f.recalc()
}

// SetCutoffHz re-derives g for a new cutoff.
func (f *SVF) SetCutoffHz(cutHz float32) {
	f.cut = max(cutHz, 0)
	f.recalc()
}

// SetQ re-derives the damping for a new quality factor.
func (f *SVF) SetQ(q float32) {
	f.q = max(q, 1e-4)
	f.recalc()
}

func (f *SVF) recalc() {
	f.g = dsp.TptG(f.cut, f.sr)
	f.r = 1 / (2 * f.q)
}

// ProcessAll advances the filter one sample and returns all four taps.
//
//	v0 = x - r*ic1eq - ic2eq
//	v1 = g*v0 + ic1eq
//	v2 = g*v1 + ic2eq
//	ic1eq' = g*v0 + v1
//	ic2eq' = g*v1 + v2
//	lp = v2 ; bp = v1 ; hp = v0 - r*v1 - v2 ; notch = hp + lp
func (f *SVF) ProcessAll(x float32) (lp, bp, hp, notch float32) {
	v0 := x - f.r*f.ic1eq - f.ic2eq
	v1 := f.g*v0 + f.ic1eq
	v2 := f.g*v1 + f.ic2eq

	f.ic1eq = dsp.KillDenormals(f.g*v0 + v1)
	f.ic2eq = dsp.KillDenormals(f.g*v1 + v2)

	lp = v2
	bp = v1
	hp = v0 - f.r*v1 - v2
	notch = hp + lp
	return lp, bp, hp, notch
}

// Process advances the filter one sample and returns the tap selected by
// mode.
func (f *SVF) Process(x float32, mode Mode) float32 {
	lp, bp, hp, notch := f.ProcessAll(x)
	switch mode {
	case Highpass:
		return hp
	case Bandpass:
		return bp
	case Notch:
		return notch
	default:
		return lp
	}
}
