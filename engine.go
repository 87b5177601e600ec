// SPDX-License-Identifier: EPL-2.0

package ambientor

// DefaultSampleRate is the rate a generator is reset to when an engine is
// constructed, before the host has reported a real one.
const DefaultSampleRate = 48000.0

// Generator is anything that can produce one mono sample at a time. Reset
// is called whenever the engine is (re)initialized or the sample rate
// changes; it must re-derive every rate-dependent coefficient, and it
// must be idempotent and cheap enough to call on every rate change. Next
// advances internal state by exactly one step and may assume the rate has
// been communicated via Reset. Neither can fail.
type Generator interface {
	Reset(sampleRate float32)
	Next() float32
}

// Engine wraps one generator and drives it one sample at a time. It is
// generic over the concrete generator type so the audio-thread path keeps
// static dispatch; use an interface-typed G only where a scene has to
// cross an opaque boundary.
//
// The engine remembers the last sample rate the host reported. If Next is
// called with a different rate, it resets the generator once before
// producing that sample, so the host can reconfigure mid-stream without
// telling anyone. Callers that need to observe a change poll SampleRate.
//
// Engines are single-threaded by design: every method runs to completion
// on the caller's goroutine, nothing locks, and nothing allocates after
// construction. Parameter mutation from another goroutine is a data race;
// the surrounding host owns that serialization (a SPSC parameter queue or
// a pre-callback snapshot/apply step are the usual shapes).
type Engine[G Generator] struct {
	sr  float32
	t   float32
	gen G
}

// NewEngine wraps an already-parameterized generator, immediately
// resetting it to DefaultSampleRate. The first Next call with the real
// rate re-resets it lazily.
func NewEngine[G Generator](gen G) *Engine[G] {
	gen.Reset(DefaultSampleRate)
	return &Engine[G]{sr: DefaultSampleRate, gen: gen}
}

// Next produces one mono sample at the given sample rate, resetting the
// generator first if the rate changed since the previous call.
func (e *Engine[G]) Next(sr float32) float32 {
	if sr != e.sr {
		e.sr = sr
		e.gen.Reset(sr)
	}
	e.t += 1 / e.sr
	return e.gen.Next()
}

// SampleRate returns the last rate seen by Next (or the construction
// default).
func (e *Engine[G]) SampleRate() float32 {
	return e.sr
}

// Time returns the elapsed generated time in seconds, accumulated as the
// sum of 1/sr per produced sample.
func (e *Engine[G]) Time() float32 {
	return e.t
}

// Swap replaces the wrapped generator. The incoming instance is reset to
// the engine's current rate and the old one is discarded; with a caller-
// constructed instance no allocation happens on the audio thread.
func (e *Engine[G]) Swap(gen G) {
	gen.Reset(e.sr)
	e.gen = gen
}

// Gen returns the wrapped generator for live parameter tweaks.
func (e *Engine[G]) Gen() G {
	return e.gen
}
