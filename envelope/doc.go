// SPDX-License-Identifier: EPL-2.0

// Package envelope provides gate-driven envelope generators and control
// smoothing:
//
//   - LinearADSR: classic four-segment envelope with linear ramps
//   - ExpADSR: RC-style envelope easing exponentially towards each target
//   - AR: percussive attack/release envelope restarted by Trigger
//   - SlewLimiter: one-pole smoother for arbitrary control signals
//
// All envelopes are plain value types advanced one sample at a time with
// Next. Times are milliseconds; a stage time of exactly zero means an
// instantaneous jump for that stage, never a division by zero. Parameters
// may be changed live: only newly derived per-stage coefficients are
// affected, the current envelope value is left alone.
package envelope
