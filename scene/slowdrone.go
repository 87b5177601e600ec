// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"math"

	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"
	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/filter"
	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/node"
	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/reverb"
)

// Base frequencies for the two drone oscillators. The 0.498 ratio lands
// just off a sub-octave, so the pair beats slowly against each other —
// dissonant on purpose.
const (
	baseFreqA = 110.0
	baseFreqB = 110.0 * 0.498
)

// lfoRateHz is the cutoff LFO rate (~20 s period).
const lfoRateHz = 0.05

// SlowDrone is a slowly evolving drone voice. Construct with NewSlowDrone
// and drive it through an Engine; all setters clamp to safe ranges and
// may be called live from the driving goroutine.
type SlowDrone struct {
	// tone sources
	oscA, oscB node.Osc
	// motion
	lfoCut      node.LFO
	driftDetune node.Drift
	// tone shaping
	lp filter.OnePoleLP
	// space
	rev *reverb.Reverb

	sr           float32
	baseCut      float32
	cutSpan      float32
	detuneCents  float32
	drive        float32
	outGain      float32

	gainSm node.Smoother
}

// NewSlowDrone returns the voice with safe defaults for 44.1-48 kHz.
func NewSlowDrone(sr float32) *SlowDrone {
	s := &SlowDrone{
		oscA:        node.NewOsc(baseFreqA, node.Tri),
		oscB:        node.NewOsc(baseFreqB, node.Saw),
		lfoCut:      node.NewSineLFO(lfoRateHz),
		driftDetune: node.NewDrift(-6, 6, 7.5, 0.25, sr),
		lp:          filter.NewOnePoleLP(900, sr),
		rev:         reverb.NewReverb(sr),
		sr:          max(sr, 1),
		baseCut:     900,
		cutSpan:     600,
		detuneCents: 3, // LFO detune depth, on top of the drift
		drive:       0.9,
		outGain:     0.33,
		gainSm:      node.NewSmoother(30, sr),
	}
	s.gainSm.Reset(s.outGain)
	return s
}

// SetCutBase sets the base low-pass cutoff (Hz, clamped to >= 50).
func (s *SlowDrone) SetCutBase(hz float32) {
	s.baseCut = max(hz, 50)
}

// SetCutSpan sets the LFO modulation span around the base cutoff
// (Hz, clamped to >= 0).
func (s *SlowDrone) SetCutSpan(hz float32) {
	s.cutSpan = max(hz, 0)
}

// SetDrive sets the saturation drive, clamped to [0.1, 5].
func (s *SlowDrone) SetDrive(d float32) {
	s.drive = dsp.Clamp(d, 0.1, 5)
}

// SetGain sets the smoothed output gain, clamped to [0, 1].
func (s *SlowDrone) SetGain(g float32) {
	s.outGain = dsp.Clamp(g, 0, 1)
}

// SetDetuneCents sets the LFO detune depth in cents, clamped to [0, 25].
func (s *SlowDrone) SetDetuneCents(c float32) {
	s.detuneCents = dsp.Clamp(c, 0, 25)
}

// Reverb exposes the scene's reverb tank for room/damp/mix tweaks.
func (s *SlowDrone) Reverb() *reverb.Reverb {
	return s.rev
}

func centsToRatio(c float32) float32 {
	// 1200 cents per octave: ratio = 2^(c/1200)
	return float32(math.Exp(math.Ln2 * float64(c) / 1200))
}

// Reset re-derives every rate-dependent coefficient in the voice. After
// it returns, no sub-component is left holding state computed for the
// old rate.
func (s *SlowDrone) Reset(sr float32) {
	s.sr = max(sr, 1)
	s.lp.SetSampleRate(s.sr)
	s.lfoCut.SetRate(lfoRateHz)
	s.driftDetune.SetSampleRate(s.sr)
	s.rev.Reset(s.sr)
	s.gainSm.SetTimeMs(30, s.sr)
}

// Next produces one mono sample.
func (s *SlowDrone) Next() float32 {
	sr := s.sr

	// Evolving cutoff: base +/- span via the very slow LFO.
	lfo01 := s.lfoCut.Next01(sr)
	cut := s.baseCut + (lfo01-0.5)*2*s.cutSpan
	s.lp.SetCutoffHz(max(cut, 80))

	// Slow detune drift (cents) plus a subtle LFO component.
	driftCents := s.driftDetune.Next(sr)
	lfoCents := (lfo01 - 0.5) * 2 * s.detuneCents
	ratioA := centsToRatio(driftCents + 0.5*lfoCents)
	ratioB := centsToRatio(-driftCents + lfoCents)

	s.oscA.SetFreq(baseFreqA * ratioA)
	s.oscB.SetFreq(baseFreqB * ratioB)

	// Tone, light saturation, space.
	x := 0.5 * (s.oscA.Next(sr) + s.oscB.Next(sr))
	tone := s.lp.Process(x)
	sat := dsp.Saturate(tone, s.drive)
	wet := s.rev.Process(sat)

	// Smooth the output gain so live tweaks never click.
	g := s.gainSm.Process(s.outGain)

	return dsp.Clamp(wet*g, -1, 1)
}
