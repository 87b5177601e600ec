// SPDX-License-Identifier: EPL-2.0

package envelope

import "github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"

// SlewLimiter is a single-pole smoother: y += (x - y) * (1 - alpha),
// with alpha derived from a millisecond time constant. Use Reset to seed
// the internal value and avoid a startup ramp (and the click that comes
// with it).
type SlewLimiter struct {
	alpha float32
	y     float32
}

// NewSlewLimiter returns a smoother with the given time constant (ms).
func NewSlewLimiter(tMs, sr float32) SlewLimiter {
	return SlewLimiter{alpha: dsp.OnePoleCoeffMs(tMs, sr)}
}

// SetTimeMs re-derives the smoothing coefficient live.
func (s *SlewLimiter) SetTimeMs(tMs, sr float32) {
	s.alpha = dsp.OnePoleCoeffMs(tMs, sr)
}

// Reset hard-sets the internal value.
func (s *SlewLimiter) Reset(y0 float32) {
	s.y = y0
}

// Process feeds one input sample and returns the smoothed value.
func (s *SlewLimiter) Process(x float32) float32 {
	s.y += (x - s.y) * (1 - s.alpha)
	return s.y
}

// Value returns the current smoothed value without advancing.
func (s *SlewLimiter) Value() float32 {
	return s.y
}
