// SPDX-License-Identifier: EPL-2.0

// Package scene provides concrete generators: complete mono voices wiring
// oscillators, modulators, filters and the reverb tank into a fixed
// per-sample pipeline. Scenes satisfy the engine's Generator contract
// (Reset + Next) and stay allocation-free after construction.
//
// The bundled SlowDrone scene is a slowly evolving drone: two detuned
// oscillators near a deliberately beating interval, very slow drift in
// cutoff and detune, a gentle modulated low-pass, mild saturation and a
// mono reverb wash.
package scene
