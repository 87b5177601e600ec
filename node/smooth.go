// SPDX-License-Identifier: EPL-2.0

package node

import "github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"

// Smoother is a one-pole parameter smoother: y += (x - y) * (1 - a), with
// a = exp(-1/(tau*sr)). It is re-timeable live and can be seeded with
// Reset to avoid a ramp from zero.
type Smoother struct {
	a float32 // closer to 1 means slower
	y float32
}

// NewSmoother returns a smoother with a millisecond time constant.
func NewSmoother(tMs, sr float32) Smoother {
	return Smoother{a: dsp.OnePoleCoeffMs(tMs, sr)}
}

// Reset hard-sets the current value.
func (s *Smoother) Reset(y0 float32) {
	s.y = y0
}

// SetTimeMs re-derives the coefficient for a new time constant.
func (s *Smoother) SetTimeMs(tMs, sr float32) {
	s.a = dsp.OnePoleCoeffMs(tMs, sr)
}

// Process feeds the target and returns the smoothed value.
func (s *Smoother) Process(x float32) float32 {
	s.y += (x - s.y) * (1 - s.a)
	return s.y
}

// Value returns the current value without advancing.
func (s *Smoother) Value() float32 {
	return s.y
}
