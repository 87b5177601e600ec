// SPDX-License-Identifier: EPL-2.0

package reverb

import (
	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"
	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/filter"
)

// delayLine is a fixed-capacity ring buffer with a logical length. The
// buffer is allocated once and never resized; setLen only moves the
// logical boundary, clamped to [1, capacity]. Reads must happen before
// the write that advances the cursor — comb and all-pass correctness
// depends on that ordering.
type delayLine struct {
	buf []float32
	i   int
	len int
}

func newDelayLine(capacity int) delayLine {
	if capacity < 1 {
		capacity = 1
	}
	return delayLine{buf: make([]float32, capacity), len: 1}
}

func (d *delayLine) setLen(n int) {
	if n < 1 {
		n = 1
	}
	if n > len(d.buf) {
		n = len(d.buf)
	}
	d.len = n
	if d.i >= d.len {
		d.i = 0
	}
}

func (d *delayLine) read() float32 {
	return d.buf[d.i]
}

func (d *delayLine) writeAdvance(x float32) {
	d.buf[d.i] = x
	d.i++
	if d.i >= d.len {
		d.i = 0
	}
}

// allpass is the canonical feedforward/feedback all-pass over a single
// delay line: y = z - g*x, with x + g*y written back.
type allpass struct {
	d delayLine
	g float32
}

func newAllpass(capacity int, g float32) allpass {
	return allpass{d: newDelayLine(capacity), g: g}
}

func (a *allpass) setLen(n int) {
	a.d.setLen(n)
}

func (a *allpass) setG(g float32) {
	a.g = dsp.Clamp(g, -0.999, 0.999)
}

func (a *allpass) process(x float32) float32 {
	z := a.d.read()
	y := z - a.g*x
	a.d.writeAdvance(x + a.g*y)
	return dsp.KillDenormals(y)
}

// combLP is a feedback comb whose feedback path runs through a one-pole
// low-pass, emulating high-frequency energy loss in a reverberant space.
// The raw (undamped) delay read is the comb's output tap.
type combLP struct {
	d  delayLine
	fb float32
	lp filter.OnePoleLP
}

func newCombLP(capacity int, sr float32) combLP {
	return combLP{
		d:  newDelayLine(capacity),
		fb: 0.7,
		lp: filter.NewOnePoleLP(8000, sr),
	}
}

func (c *combLP) setLen(n int) {
	c.d.setLen(n)
}

func (c *combLP) setFeedback(fb float32) {
	c.fb = dsp.Clamp(fb, 0, 0.99)
}

func (c *combLP) setDampCut(hz float32) {
	c.lp.SetCutoffHz(hz)
}

func (c *combLP) setSampleRate(sr float32) {
	c.lp.SetSampleRate(sr)
}

func (c *combLP) process(x float32) float32 {
	z := c.d.read()
	damped := c.lp.Process(z)
	c.d.writeAdvance(x + c.fb*damped)
	return dsp.KillDenormals(z)
}
