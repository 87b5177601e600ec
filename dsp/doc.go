// SPDX-License-Identifier: EPL-2.0

// Package dsp provides the scalar math layer the rest of the engine is
// built on: clamping and interpolation helpers, phase wrapping, denormal
// suppression, dB/linear conversion, polynomial trig approximations,
// soft-clipping nonlinearities, one-pole coefficient derivation, a
// phase-accumulator sine filler, and a running RMS meter.
//
// # Conventions
//
// Samples and coefficients are float32 in the audio range [-1.0, 1.0].
// Every function here is pure and total: out-of-range inputs are clamped,
// never rejected, so nothing in this package can fail at runtime.
//
// # Denormals
//
// Recursive filters decay towards zero and eventually reach subnormal
// float magnitudes, which are dramatically slower on most CPUs. Every
// feedback tap in the engine passes through KillDenormals, which flushes
// magnitudes below 1e-20 to exactly zero:
//
//	y = dsp.KillDenormals(y)
//
// # Coefficients
//
// Smoothing and envelope shaping use the one-pole form y += a*(x-y).
// OnePoleCoeffMs derives the "time to 63%" coefficient from a millisecond
// time constant, OnePoleCoeffHz from a cutoff frequency, and TptG the
// g = tan(pi*fc/sr) prewarp used by the state-variable filter.
//
// # Approximations
//
// FastSin, FastCos and FastSoftClip are polynomial/rational replacements
// for the exact stdlib routines, bounded to |err| < 1e-3 over the musical
// range. The exact forms (math.Sin, SoftClip via tanh) are the defaults
// throughout the engine; the fast forms exist for hot block-fill paths
// such as FillSine.
package dsp
