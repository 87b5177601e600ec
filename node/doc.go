// SPDX-License-Identifier: EPL-2.0

// Package node provides the per-sample building blocks scenes are wired
// from: free-running oscillators, an LFO wrapper, a slow deterministic
// drift modulator, a parameter smoother, a two-input mixer and a
// constant-power pan law.
//
// Nodes are deliberately simple value types; a scene composes them in a
// fixed order and steps each one exactly once per output sample, passing
// the current sample rate to every Next call. Nothing here allocates or
// blocks.
//
// The oscillators are intentionally non-band-limited (naive triangle and
// saw): aliasing at high frequencies is accepted as part of the ambient
// character, so do not swap in band-limited variants without re-checking
// the intended timbre.
package node
