// SPDX-License-Identifier: EPL-2.0

// Package ambientor is a real-time ambient audio synthesis engine.
//
// The package generates evolving drone textures from small DSP building
// blocks: oscillators, envelopes, filters, a Schroeder-style reverb tank,
// and slow modulation sources, wired together into scenes. All synthesis
// runs in float32, one mono sample at a time, with zero allocations on
// the audio path once a voice exists.
//
// # Package Layout
//
//   - dsp: scalar math helpers (clamping, dB conversion, fast trig,
//     soft clipping, coefficient derivation)
//   - envelope: ADSR, AR, and slew-limiter envelopes
//   - filter: one-pole filters, DC blocker, and a TPT state-variable filter
//   - node: oscillators, LFOs, drift modulators, mixing helpers
//   - reverb: fixed-capacity allpass/comb reverb tank
//   - scene: complete voices built from the blocks above
//   - formats/wav: 16-bit PCM WAV encoding
//   - playback: live audio output via oto
//
// # Quick Start
//
// The simplest way to make sound is a Voice, which runs the slow-drone
// scene behind a small handle:
//
//	v := ambientor.New(48000)
//	v.SetGain(0.8)
//
//	// Real-time: fill an interleaved stereo block
//	buf := make([]float32, 512*2)
//	v.RenderInterleaved(buf, 512, 2)
//
//	// Offline: render ten seconds straight to a WAV file
//	f, _ := os.Create("drone.wav")
//	v.WriteWAV(f, 10*time.Second, 2)
//
// # Engines and Generators
//
// Underneath, a Voice drives an Engine, which wraps anything satisfying
// the Generator contract: Reset(sampleRate) re-derives rate-dependent
// state, Next() produces one mono sample. The engine is generic over the
// concrete generator type so per-sample calls stay statically dispatched:
//
//	eng := ambientor.NewEngine(scene.NewSlowDrone(48000))
//	s := eng.Next(48000)
//
// When Next sees a different sample rate than the previous call, it
// resets the generator once before producing the sample, so a host can
// reconfigure mid-stream.
//
// # Sample Conventions
//
// Samples are float32 in [-1, 1]. Scenes clamp their final output;
// intermediate nodes may exceed the range and are tamed by saturation.
// Denormal results are flushed to zero inside the recursive filters so
// long silent tails stay cheap.
//
// # Threading
//
// Nothing in this package locks. A Voice, Engine, or any node is owned by
// one goroutine, typically the audio callback; parameter setters must be
// called from that same goroutine.
package ambientor
