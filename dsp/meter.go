// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// Rms tracks a running RMS level via an exponential mean-square average.
// Alpha is the per-sample smoothing factor in [0,1]; a good choice is
// OnePoleCoeffMs(50, sr) for a ~50 ms window.
type Rms struct {
	Alpha float32
	state float32
}

// NewRms returns a meter with the given smoothing factor.
func NewRms(alpha float32) Rms {
	return Rms{Alpha: alpha}
}

// Reset clears the accumulated mean square.
func (r *Rms) Reset() {
	r.state = 0
}

// Tick feeds one sample and returns the current RMS estimate.
func (r *Rms) Tick(x float32) float32 {
	x2 := x * x
	r.state += r.Alpha * (x2 - r.state)
	return float32(math.Sqrt(float64(r.state)))
}
