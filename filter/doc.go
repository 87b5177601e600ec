// SPDX-License-Identifier: EPL-2.0

// Package filter provides the recursive filters used throughout the
// engine:
//
//   - OnePoleLP: RC-style one-pole low-pass, y += a*(x-y)
//   - OnePoleHP: one-pole high-pass in the leaky-integrator form
//   - DCBlock: a low-cutoff high-pass preset for DC removal
//   - SVF: state-variable filter via the topology-preserving transform
//
// The one-poles are cheap smoothers and gentle tone shapers; they are not
// bilinear-matched. The SVF follows the g = tan(pi*fc/sr), R = 1/(2Q)
// formulation, which stays numerically stable under per-sample modulation
// of cutoff and Q — the reason it is used for the modulated tone filter
// instead of a direct-form biquad.
//
// Coefficients are cached: changing the cutoff, Q or sample rate
// re-derives them immediately, so the next Process call always runs on
// current values. Every recursive output passes through denormal
// suppression.
package filter
