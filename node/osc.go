// SPDX-License-Identifier: EPL-2.0

package node

import (
	"math"

	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"
)

// Wave selects an oscillator waveform.
type Wave uint8

const (
	Sine Wave = iota
	Tri
	Saw
)

func waveSample(phase01 float32, wave Wave) float32 {
	switch wave {
	case Tri:
		return 4*float32(math.Abs(float64(phase01-0.5))) - 1
	case Saw:
		return 2*phase01 - 1
	default:
		return float32(math.Sin(float64(dsp.Tau * phase01)))
	}
}

// Osc is a free-running oscillator with phase in [0,1), frequency in Hz
// and an output gain. Not anti-aliased; fine for drones and LFO duty.
type Osc struct {
	phase float32
	freq  float32
	wave  Wave
	gain  float32
}

// NewOsc returns an oscillator at freqHz with the given waveform and
// unity gain.
func NewOsc(freqHz float32, wave Wave) Osc {
	return Osc{freq: freqHz, wave: wave, gain: 1}
}

// SetFreq sets the frequency in Hz (clamped to >= 0).
func (o *Osc) SetFreq(hz float32) {
	o.freq = max(hz, 0)
}

// SetGain sets the output gain (clamped to >= 0).
func (o *Osc) SetGain(g float32) {
	o.gain = max(g, 0)
}

// SetWave switches the waveform.
func (o *Osc) SetWave(w Wave) {
	o.wave = w
}

// SetPhase hard-sets the phase; out-of-range values fold back into [0,1).
func (o *Osc) SetPhase(p float32) {
	o.phase = dsp.WrapPhase01(p)
}

// Next advances the phase by freq/sr (wrapped into [0,1)) and returns the
// waveform sample scaled by the gain.
func (o *Osc) Next(sr float32) float32 {
	o.phase = dsp.WrapPhase01(o.phase + o.freq/sr)
	return waveSample(o.phase, o.wave) * o.gain
}

// LFO is an oscillator used as a low-frequency modulator, exposing its
// output normalized to [-1,1] or remapped to [0,1].
type LFO struct {
	osc Osc
}

// NewSineLFO returns a sine LFO at rateHz.
func NewSineLFO(rateHz float32) LFO {
	return LFO{osc: NewOsc(rateHz, Sine)}
}

// NewTriLFO returns a triangle LFO at rateHz.
func NewTriLFO(rateHz float32) LFO {
	return LFO{osc: NewOsc(rateHz, Tri)}
}

// NewSawLFO returns a saw LFO at rateHz.
func NewSawLFO(rateHz float32) LFO {
	return LFO{osc: NewOsc(rateHz, Saw)}
}

// NextNorm advances the LFO and returns its value in [-1,1].
func (l *LFO) NextNorm(sr float32) float32 {
	return l.osc.Next(sr)
}

// Next01 advances the LFO and returns its value remapped to [0,1].
func (l *LFO) Next01(sr float32) float32 {
	return 0.5 * (l.osc.Next(sr) + 1)
}

// SetRate sets the LFO rate in Hz.
func (l *LFO) SetRate(hz float32) {
	l.osc.SetFreq(hz)
}

// SetPhase hard-sets the LFO phase in [0,1).
func (l *LFO) SetPhase(p float32) {
	l.osc.SetPhase(p)
}
