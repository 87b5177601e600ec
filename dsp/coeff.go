// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// OnePoleCoeffMs derives the one-pole smoothing coefficient for a time
// constant in milliseconds: a = exp(-1/(tau*sr)), where tau is the time
// to reach ~63% of a step. A non-positive time means instant (returns 1,
// which collapses y += (x-y)*(1-a) to a hard assignment).
func OnePoleCoeffMs(tMs, sr float32) float32 {
	if tMs <= 0 {
		return 1
	}
	tau := float64(tMs) * 0.001
	return float32(math.Exp(-1 / (tau * float64(sr))))
}

// OnePoleCoeffHz derives the one-pole coefficient from a cutoff frequency:
// exp(-2*pi*fc/sr), with the cutoff clamped to [0, 0.499*sr]. This is the
// lightweight RC-style discretization, not a bilinear-matched filter.
func OnePoleCoeffHz(cutHz, sr float32) float32 {
	fc := Clamp(cutHz, 0, 0.499*sr)
	return float32(math.Exp(-2 * math.Pi * float64(fc) / float64(sr)))
}
