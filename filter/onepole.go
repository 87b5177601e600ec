// SPDX-License-Identifier: EPL-2.0

package filter

import "github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"

// OnePoleLP is a one-pole low-pass, y += a*(x-y), with
// a = 1 - exp(-2*pi*fc/sr).
type OnePoleLP struct {
	a  float32
	y  float32
	sr float32
	fc float32
}

// NewOnePoleLP returns a low-pass with cutoff cutHz at sample rate sr.
func NewOnePoleLP(cutHz, sr float32) OnePoleLP {
	f := OnePoleLP{
		sr: max(sr, 1),
		fc: max(cutHz, 0),
	}
	f.recalc()
	return f
}

// SetSampleRate re-derives the coefficient for a new rate.
func (f *OnePoleLP) SetSampleRate(sr float32) {
	f.sr = max(sr, 1)
	f.recalc()
}

// SetCutoffHz re-derives the coefficient for a new cutoff.
func (f *OnePoleLP) SetCutoffHz(cutHz float32) {
	f.fc = max(cutHz, 0)
	f.recalc()
}

func (f *OnePoleLP) recalc() {
	f.a = 1 - dsp.OnePoleCoeffHz(f.fc, f.sr)
}

// Process filters one sample.
func (f *OnePoleLP) Process(x float32) float32 {
	f.y += f.a * (x - f.y)
	f.y = dsp.KillDenormals(f.y)
	return f.y
}

// Value returns the last output.
func (f *OnePoleLP) Value() float32 {
	return f.y
}

// OnePoleHP is a one-pole high-pass in the leaky-integrator form
//
//	y[n] = x[n] - x[n-1] + b*y[n-1]
//
// with b = exp(-2*pi*fc/sr).
type OnePoleHP struct {
	b      float32
	x1, y1 float32
	sr     float32
	fc     float32
}

// NewOnePoleHP returns a high-pass with cutoff cutHz at sample rate sr.
func NewOnePoleHP(cutHz, sr float32) OnePoleHP {
	f := OnePoleHP{
		sr: max(sr, 1),
		fc: max(cutHz, 0),
	}
	f.recalc()
	return f
}

// SetSampleRate re-derives the coefficient for a new rate.
func (f *OnePoleHP) SetSampleRate(sr float32) {
	f.sr = max(sr, 1)
	f.recalc()
}

// SetCutoffHz re-derives the coefficient for a new cutoff.
func (f *OnePoleHP) SetCutoffHz(cutHz float32) {
	f.fc = max(cutHz, 0)
	f.recalc()
}

func (f *OnePoleHP) recalc() {
	f.b = dsp.OnePoleCoeffHz(f.fc, f.sr)
}

// Process filters one sample.
func (f *OnePoleHP) Process(x float32) float32 {
	y := x - f.x1 + f.b*f.y1
	y = dsp.KillDenormals(y)
	f.x1 = x
	f.y1 = y
	return y
}

// Value returns the last output.
func (f *OnePoleHP) Value() float32 {
	return f.y1
}

// DefaultDCBlockHz is the recommended DC-blocker cutoff.
const DefaultDCBlockHz = 20.0

// DCBlock is a high-pass preset to a very low cutoff for DC removal.
type DCBlock struct {
	hp OnePoleHP
}

// NewDCBlock returns a blocker with the given cutoff (DefaultDCBlockHz is
// the usual choice).
func NewDCBlock(cutHz, sr float32) DCBlock {
	return DCBlock{hp: NewOnePoleHP(cutHz, sr)}
}

// SetSampleRate re-derives the coefficient for a new rate.
func (f *DCBlock) SetSampleRate(sr float32) { f.hp.SetSampleRate(sr) }

// SetCutoffHz re-derives the coefficient for a new cutoff.
func (f *DCBlock) SetCutoffHz(hz float32) { f.hp.SetCutoffHz(hz) }

// Process filters one sample.
func (f *DCBlock) Process(x float32) float32 { return f.hp.Process(x) }

// Value returns the last output.
func (f *DCBlock) Value() float32 { return f.hp.Value() }
