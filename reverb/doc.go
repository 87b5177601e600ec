// SPDX-License-Identifier: EPL-2.0

// Package reverb implements a small fixed-topology mono reverb:
//
//	input -> AP1 -> AP2 -> {4 parallel damped combs, averaged} -> AP3 -> AP4 -> wet
//
// Two short all-passes diffuse the input, four feedback combs with an
// internal damping low-pass form the tank, and two more all-passes smear
// the tail. Comb lengths are mutually incommensurate base sample counts
// (the Schroeder design goal of avoiding periodic coloration), scaled by
// the ratio of the actual sample rate to 48 kHz and clamped to each
// line's fixed capacity.
//
// Every delay line is a fixed-capacity ring buffer allocated once at
// construction; Reset and the control setters only re-derive lengths and
// coefficients, so the per-sample path never allocates. The capacities
// cover ~0.7 s of tank delay and ~85 ms of diffusion at 48 kHz.
//
// Controls are normalized to [0,1]: room maps to comb feedback
// 0.55 + 0.40*room, damp maps to the comb low-pass cutoff
// 2000 + 12000*(1-damp) Hz (higher damp darkens the tail), and mix is
// the wet fraction of the output.
package reverb
