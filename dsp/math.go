// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

const (
	// Tau is 2*pi.
	Tau = float32(2 * math.Pi)

	// EpsSmall is the threshold used for denormal flushing and safe
	// divisions.
	EpsSmall = float32(1.0e-20)
)

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep maps x from the [edge0, edge1] range onto [0,1] with a cubic
// ease. The normalized position is clamped before shaping, so inputs
// outside the edges saturate at 0 or 1.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// WrapPhase01 reduces any real phase into [0, 1). The reduction is
// floor-based and exact at integer boundaries: WrapPhase01(1.0) == 0.0.
func WrapPhase01(p float32) float32 {
	p -= float32(math.Floor(float64(p)))
	if p >= 1 {
		return 0
	}
	return p
}

// KillDenormals flushes subnormal-range magnitudes to exactly zero.
// Apply it at every recursive feedback tap.
func KillDenormals(x float32) float32 {
	if x < EpsSmall && x > -EpsSmall {
		return 0
	}
	return x
}

// DBToLin converts decibels to linear gain: lin = 10^(db/20).
// Anything at or below -120 dB is treated as silence and returns exactly 0.
func DBToLin(db float32) float32 {
	if db <= -120 {
		return 0
	}
	// ln(10)/20
	return float32(math.Exp(0.11512925464970229 * float64(db)))
}

// LinToDB converts linear gain to decibels: db = 20*log10(lin).
// Gains at or below EpsSmall return exactly -120.
func LinToDB(lin float32) float32 {
	if lin <= EpsSmall {
		return -120
	}
	// 20/ln(10)
	return float32(8.685889638065036 * math.Log(float64(lin)))
}

// MixInPlace accumulates src into dst with a gain: dst[i] += src[i]*gain.
// Mismatched or empty slices are a no-op.
func MixInPlace(dst, src []float32, gain float32) {
	if len(dst) != len(src) || len(dst) == 0 {
		return
	}
	for i, s := range src {
		dst[i] += s * gain
	}
}
