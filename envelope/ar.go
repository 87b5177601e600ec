// SPDX-License-Identifier: EPL-2.0

package envelope

import "github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"

// AR is an exponential attack/release envelope for percussive sounds.
// Trigger restarts it from zero; it rises towards 1 and, once within
// 1e-4 of the peak, falls back towards 0, snapping to exact silence at
// 1e-5. Attack and release are RC time constants in milliseconds.
type AR struct {
	atkMs, relMs float32
	sr           float32
	env          float32
	rising       bool
	aA, aR       float32
}

// NewAR returns an idle percussive envelope.
func NewAR(atkMs, relMs, sr float32) AR {
	e := AR{atkMs: atkMs, relMs: relMs, sr: sr}
	e.recalc()
	return e
}

// SetSampleRate re-derives coefficients for a new rate.
func (e *AR) SetSampleRate(sr float32) {
	if sr < 1 {
		sr = 1
	}
	e.sr = sr
	e.recalc()
}

// SetParams changes the attack and release time constants live.
func (e *AR) SetParams(atkMs, relMs float32) {
	e.atkMs = max(atkMs, 0)
	e.relMs = max(relMs, 0)
	e.recalc()
}

func (e *AR) recalc() {
	e.aA = dsp.OnePoleCoeffMs(e.atkMs, e.sr)
	e.aR = dsp.OnePoleCoeffMs(e.relMs, e.sr)
}

// Trigger restarts the envelope from zero in the rising phase.
func (e *AR) Trigger() {
	e.env = 0
	e.rising = true
}

// Next advances the envelope by one sample and returns its value.
func (e *AR) Next() float32 {
	if e.rising {
		e.env += (1 - e.env) * (1 - e.aA)
		if e.env >= 0.9999 {
			e.rising = false
		}
	} else {
		e.env += (0 - e.env) * (1 - e.aR)
		if e.env <= 1e-5 {
			e.env = 0
		}
	}
	return e.env
}

// Value returns the current envelope value without advancing.
func (e *AR) Value() float32 {
	return e.env
}
