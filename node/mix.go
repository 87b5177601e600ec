// SPDX-License-Identifier: EPL-2.0

package node

import (
	"math"

	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"
)

// Mix2 is a two-input mixer with independent gains: out = a*g1 + b*g2.
type Mix2 struct {
	g1, g2 float32
}

// NewMix2 returns a mixer with the given input gains.
func NewMix2(g1, g2 float32) Mix2 {
	return Mix2{g1: g1, g2: g2}
}

// Set replaces both input gains.
func (m *Mix2) Set(g1, g2 float32) {
	m.g1 = g1
	m.g2 = g2
}

// Run mixes one sample pair.
func (m *Mix2) Run(a, b float32) float32 {
	return a*m.g1 + b*m.g2
}

// PanGains maps pan in [-1,1] (hard left to hard right) onto an angle in
// [0, pi/2] and returns the constant-power (left, right) gains, so that
// left*left + right*right == 1 at every position.
func PanGains(pan float32) (left, right float32) {
	p := (dsp.Clamp(pan, -1, 1) + 1) * 0.25 * float32(math.Pi)
	return float32(math.Cos(float64(p))), float32(math.Sin(float64(p)))
}
