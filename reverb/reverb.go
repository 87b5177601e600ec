// SPDX-License-Identifier: EPL-2.0

package reverb

import "github.com/rizkysaputradev/Ambientor-Real-Time-Engine/dsp"

// Delay-line capacities, sized for the longest supported delay at the
// highest anticipated rate.
const (
	maxPreAP  = 2048  // ~43 ms @ 48k
	maxTank   = 34000 // ~0.708 s @ 48k
	maxPostAP = 4096  // ~85 ms @ 48k
)

// refRate is the sample rate the base delay lengths are expressed at.
const refRate = 48000.0

// Reverb is the fixed-topology mono tank. Construct with NewReverb and
// drive it one sample at a time; Reset re-derives every length and
// coefficient for a new sample rate without touching the buffers.
type Reverb struct {
	sr float32

	// pre-diffusion
	ap1, ap2 allpass
	// tank: four combs with mutually incommensurate lengths
	c1, c2, c3, c4 combLP
	// post-diffusion
	ap3, ap4 allpass

	room float32 // 0..1, mapped to comb feedback
	damp float32 // 0..1, mapped to comb low-pass cutoff
	mix  float32 // 0..1 wet fraction

	preDelaySamples int
}

// NewReverb returns a tank tuned with moderate defaults (room 0.6,
// damp 0.4, mix 0.25) for the given sample rate.
func NewReverb(sr float32) *Reverb {
	r := &Reverb{
		ap1:  newAllpass(maxPreAP, 0.7),
		ap2:  newAllpass(maxPreAP, 0.7),
		c1:   newCombLP(maxTank, sr),
		c2:   newCombLP(maxTank, sr),
		c3:   newCombLP(maxTank, sr),
		c4:   newCombLP(maxTank, sr),
		ap3:  newAllpass(maxPostAP, 0.6),
		ap4:  newAllpass(maxPostAP, 0.6),
		room: 0.6,
		damp: 0.4,
		mix:  0.25,
	}
	r.Reset(sr)
	return r
}

// Reset re-derives all delay lengths and coefficients for a new sample
// rate. It is deterministic and idempotent: calling it twice with the
// same rate leaves identical state behind.
func (r *Reverb) Reset(sr float32) {
	r.sr = max(sr, 1)

	scale := r.sr / refRate
	r.ap1.setLen(int(641 * scale))
	r.ap1.setG(0.72)
	r.ap2.setLen(int(997 * scale))
	r.ap2.setG(0.70)

	r.c1.setLen(int(7789 * scale))
	r.c2.setLen(int(8513 * scale))
	r.c3.setLen(int(9449 * scale))
	r.c4.setLen(int(10867 * scale))
	for _, c := range [...]*combLP{&r.c1, &r.c2, &r.c3, &r.c4} {
		c.setSampleRate(r.sr)
	}

	r.ap3.setLen(int(579 * scale))
	r.ap3.setG(0.65)
	r.ap4.setLen(int(773 * scale))
	r.ap4.setG(0.61)

	// Nominal ~12 ms pre-delay. Not yet realized as a true delay line;
	// the pre-diffusion all-passes stand in for it.
	r.preDelaySamples = int(r.sr * 0.012)

	r.updateParams()
}

func (r *Reverb) updateParams() {
	fb := 0.55 + 0.40*dsp.Clamp(r.room, 0, 1) // 0.55..0.95
	cut := 2000 + 12000*(1-dsp.Clamp(r.damp, 0, 1))
	for _, c := range [...]*combLP{&r.c1, &r.c2, &r.c3, &r.c4} {
		c.setFeedback(fb)
		c.setDampCut(cut)
	}
	r.mix = dsp.Clamp(r.mix, 0, 1)
}

// SetRoom sets the room size in [0,1] and re-derives the comb feedback.
func (r *Reverb) SetRoom(v float32) {
	r.room = v
	r.updateParams()
}

// SetDamp sets the damping in [0,1]; higher values darken the tail.
func (r *Reverb) SetDamp(v float32) {
	r.damp = v
	r.updateParams()
}

// SetMix sets the wet fraction in [0,1].
func (r *Reverb) SetMix(v float32) {
	r.mix = v
	r.updateParams()
}

// Process runs one mono sample through the tank and returns the dry/wet
// mixed output.
func (r *Reverb) Process(x float32) float32 {
	pre := r.ap2.process(r.ap1.process(x))

	y1 := r.c1.process(pre)
	y2 := r.c2.process(pre)
	y3 := r.c3.process(pre)
	y4 := r.c4.process(pre)
	sum := 0.25 * (y1 + y2 + y3 + y4)

	wet := r.ap4.process(r.ap3.process(sum))

	y := (1-r.mix)*x + r.mix*wet
	return dsp.KillDenormals(y)
}
