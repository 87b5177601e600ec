// SPDX-License-Identifier: EPL-2.0

package ambientor

import (
	"math"

	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/scene"
)

// Voice is the host-facing handle around a drone engine. It remembers the
// host's sample rate so callers do not pass it per sample, and it carries
// a master gain applied after the scene's own smoothed output gain.
//
// A Voice is not safe for concurrent use; drive it from one goroutine
// (typically the audio callback) and apply parameter changes from the
// same place.
type Voice struct {
	sr   float32
	gain float32
	eng  *Engine[*scene.SlowDrone]
}

// New creates a voice running the slow-drone scene at sampleRate. Rates
// below 1 Hz are clamped to 1.
func New(sampleRate float32) *Voice {
	if sampleRate < 1 {
		sampleRate = 1
	}

	v := &Voice{
		sr:   sampleRate,
		gain: 1,
		eng:  NewEngine(scene.NewSlowDrone(sampleRate)),
	}
	// Make sure the scene carries the exact requested rate, not the
	// construction default.
	v.eng.Gen().Reset(sampleRate)
	return v
}

// Reset moves the voice to a new sample rate, re-deriving every
// rate-dependent coefficient in the scene. Use it when the host device
// reconfigures.
func (v *Voice) Reset(sampleRate float32) {
	if sampleRate < 1 {
		sampleRate = 1
	}
	v.sr = sampleRate
	v.eng.Gen().Reset(sampleRate)
}

// SampleRate returns the rate the voice currently renders at.
func (v *Voice) SampleRate() float32 {
	return v.sr
}

// SetGain sets the master output gain. Negative values clamp to 0;
// non-finite values fall back to 1.
func (v *Voice) SetGain(gain float32) {
	if math.IsNaN(float64(gain)) || math.IsInf(float64(gain), 0) {
		v.gain = 1
		return
	}
	v.gain = max(gain, 0)
}

// Gain returns the master output gain.
func (v *Voice) Gain() float32 {
	return v.gain
}

// SetSceneGain sets the scene's own smoothed output gain in [0, 1].
func (v *Voice) SetSceneGain(gain float32) {
	v.eng.Gen().SetGain(gain)
}

// SetCutBase sets the scene's base low-pass cutoff in Hz.
func (v *Voice) SetCutBase(hz float32) {
	v.eng.Gen().SetCutBase(hz)
}

// SetCutSpan sets the modulation span in Hz around the base cutoff.
func (v *Voice) SetCutSpan(hz float32) {
	v.eng.Gen().SetCutSpan(hz)
}

// SetDrive sets the saturation intensity, clamped to [0.1, 5].
func (v *Voice) SetDrive(drive float32) {
	v.eng.Gen().SetDrive(drive)
}

// SetDetuneCents sets the detune depth in cents for drift and vibrato.
func (v *Voice) SetDetuneCents(cents float32) {
	v.eng.Gen().SetDetuneCents(cents)
}

// Scene exposes the underlying scene for parameter access the dedicated
// setters do not cover (reverb room, damp, mix).
func (v *Voice) Scene() *scene.SlowDrone {
	return v.eng.Gen()
}
