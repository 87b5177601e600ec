// SPDX-License-Identifier: EPL-2.0

package envelope

import "github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"

// Stage identifies the segment a LinearADSR is currently in.
type Stage uint8

const (
	StageIdle Stage = iota
	StageAttack
	StageDecay
	StageSustain
	StageRelease
)

// LinearADSR is a gate-driven envelope with linear attack, decay and
// release ramps. Times are milliseconds, sustain is [0,1].
type LinearADSR struct {
	atkMs, decMs, sus, relMs float32
	sr                       float32

	env   float32
	gate  bool
	stage Stage

	// per-sample increments, re-derived on any parameter or rate change
	aInc, dDec, rDec float32
}

// NewLinearADSR returns an idle envelope configured for the given stage
// times (ms), sustain level and sample rate.
func NewLinearADSR(atkMs, decMs, sus, relMs, sr float32) LinearADSR {
	e := LinearADSR{
		atkMs: atkMs,
		decMs: decMs,
		sus:   dsp.Clamp(sus, 0, 1),
		relMs: relMs,
		sr:    sr,
	}
	e.recalc()
	return e
}

// SetSampleRate re-derives the per-sample increments for a new rate.
func (e *LinearADSR) SetSampleRate(sr float32) {
	if sr < 1 {
		sr = 1
	}
	e.sr = sr
	e.recalc()
}

// SetParams changes the stage times and sustain level live. The current
// envelope value and stage are untouched.
func (e *LinearADSR) SetParams(atkMs, decMs, sus, relMs float32) {
	e.atkMs = max(atkMs, 0)
	e.decMs = max(decMs, 0)
	e.sus = dsp.Clamp(sus, 0, 1)
	e.relMs = max(relMs, 0)
	e.recalc()
}

func (e *LinearADSR) recalc() {
	sr := max(e.sr, 1)
	if e.atkMs <= 0 {
		e.aInc = 1
	} else {
		e.aInc = 1 / (e.atkMs * 0.001 * sr)
	}
	if e.decMs <= 0 {
		e.dDec = 1
	} else {
		e.dDec = (1 - e.sus) / (e.decMs * 0.001 * sr)
	}
	if e.relMs <= 0 {
		e.rDec = 1
	} else {
		e.rDec = e.sus / (e.relMs * 0.001 * sr)
	}
}

// GateOn forces the attack stage from any state.
func (e *LinearADSR) GateOn() {
	e.gate = true
	e.stage = StageAttack
}

// GateOff forces the release stage from any state.
func (e *LinearADSR) GateOff() {
	e.gate = false
	e.stage = StageRelease
}

// Stage reports the current segment.
func (e *LinearADSR) Stage() Stage {
	return e.stage
}

// Next advances the envelope by one sample and returns its value.
func (e *LinearADSR) Next() float32 {
	switch e.stage {
	case StageIdle:
		e.env = 0
	case StageAttack:
		e.env += e.aInc
		if e.env >= 1 {
			e.env = 1
			e.stage = StageDecay
		}
	case StageDecay:
		switch {
		case !e.gate:
			// gate dropped mid-decay, skip straight to release
			e.stage = StageRelease
		case e.env > e.sus:
			e.env -= e.dDec
			if e.env <= e.sus {
				e.env = e.sus
				e.stage = StageSustain
			}
		default:
			e.env = e.sus
			e.stage = StageSustain
		}
	case StageSustain:
		if !e.gate {
			e.stage = StageRelease
		} else {
			e.env = e.sus
		}
	case StageRelease:
		switch {
		case e.relMs <= 0:
			e.env = 0
			e.stage = StageIdle
		case e.env > 0:
			e.env -= e.rDec
			if e.env <= 0 {
				e.env = 0
				e.stage = StageIdle
			}
		default:
			e.env = 0
			e.stage = StageIdle
		}
	}
	return e.env
}

// Value returns the current envelope value without advancing.
func (e *LinearADSR) Value() float32 {
	return e.env
}
