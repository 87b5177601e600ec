// SPDX-License-Identifier: EPL-2.0

package dsp

// DcBlock is a one-pole high-pass in the leaky-integrator form
//
//	y[n] = x[n] - x[n-1] + a*y[n-1]
//
// with a supplied directly (close to 1.0 for DC removal). The filter
// package carries the cutoff-parameterized equivalent; both realize the
// same difference equation.
type DcBlock struct {
	a      float32
	x1, y1 float32
}

// NewDcBlock returns a blocker with coefficient a.
func NewDcBlock(a float32) DcBlock {
	return DcBlock{a: a}
}

// SetCoeff replaces the feedback coefficient.
func (f *DcBlock) SetCoeff(a float32) {
	f.a = a
}

// Process filters one sample.
func (f *DcBlock) Process(x float32) float32 {
	y := x - f.x1 + f.a*f.y1
	f.x1 = x
	f.y1 = y
	return y
}
