// SPDX-License-Identifier: EPL-2.0

package envelope

import "github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"

// ExpADSR is an RC-style envelope: a continuous value eased exponentially
// towards the current target, with only a gate flag for state. While
// gated it rises towards 1 on the attack coefficient, then settles
// towards the sustain level on the decay coefficient; ungated it falls
// towards 0 on the release coefficient. Each stage time is the RC time
// constant in milliseconds.
type ExpADSR struct {
	atkMs, decMs, sus, relMs float32
	sr                       float32

	env  float32
	gate bool

	// per-stage coefficients a = exp(-1/(tau*sr))
	aA, aD, aR float32
}

// NewExpADSR returns an idle envelope for the given time constants (ms),
// sustain level and sample rate.
func NewExpADSR(atkMs, decMs, sus, relMs, sr float32) ExpADSR {
	e := ExpADSR{
		atkMs: atkMs,
		decMs: decMs,
		sus:   dsp.Clamp(sus, 0, 1),
		relMs: relMs,
		sr:    sr,
	}
	e.recalc()
	return e
}

// SetSampleRate re-derives stage coefficients for a new rate.
func (e *ExpADSR) SetSampleRate(sr float32) {
	if sr < 1 {
		sr = 1
	}
	e.sr = sr
	e.recalc()
}

// SetParams changes time constants and sustain live, leaving the current
// value alone.
func (e *ExpADSR) SetParams(atkMs, decMs, sus, relMs float32) {
	e.atkMs = max(atkMs, 0)
	e.decMs = max(decMs, 0)
	e.sus = dsp.Clamp(sus, 0, 1)
	e.relMs = max(relMs, 0)
	e.recalc()
}

func (e *ExpADSR) recalc() {
	e.aA = dsp.OnePoleCoeffMs(e.atkMs, e.sr)
	e.aD = dsp.OnePoleCoeffMs(e.decMs, e.sr)
	e.aR = dsp.OnePoleCoeffMs(e.relMs, e.sr)
}

// GateOn starts or re-enters the attack phase.
func (e *ExpADSR) GateOn() { e.gate = true }

// GateOff begins the release phase.
func (e *ExpADSR) GateOff() { e.gate = false }

// Next advances the envelope by one sample and returns its value.
//
// Per-stage update, exponential towards the target:
//
//	attack:  env += (1   - env) * (1 - aA)
//	decay:   env += (sus - env) * (1 - aD)
//	release: env += (0   - env) * (1 - aR)
func (e *ExpADSR) Next() float32 {
	if e.gate {
		switch {
		case e.env < 0.9999:
			e.env += (1 - e.env) * (1 - e.aA)
		case e.env > e.sus:
			e.env += (e.sus - e.env) * (1 - e.aD)
		default:
			e.env = e.sus // hold
		}
	} else {
		e.env += (0 - e.env) * (1 - e.aR)
		if e.env < 1e-6 && e.env > -1e-6 {
			e.env = 0
		}
	}
	return e.env
}

// Value returns the current envelope value without advancing.
func (e *ExpADSR) Value() float32 {
	return e.env
}
