// SPDX-License-Identifier: EPL-2.0

package ambientor

import (
	"fmt"
	"io"
	"time"

	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/formats/wav"
	"github.com/rizkysaputradev/Ambientor-Real-Time-Engine/utils"
)

// RenderInterleaved fills dst with frames of interleaved float32 audio at
// the voice's current sample rate. The generator is mono; each produced
// sample is duplicated across all channels of its frame. Output already
// includes the master gain and stays within [-1, 1] as long as gain <= 1.
//
// It returns the number of frames rendered. dst must hold at least
// frames*channels samples or ErrShortBuffer is returned; channels below 1
// return ErrInvalidChannelCount. Zero frames is a no-op.
func (v *Voice) RenderInterleaved(dst []float32, frames, channels int) (int, error) {
	if channels < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}
	if frames < 0 {
		frames = 0
	}
	if len(dst) < frames*channels {
		return 0, fmt.Errorf("%w: need %d samples, have %d",
			ErrShortBuffer, frames*channels, len(dst))
	}

	idx := 0
	for range frames {
		s := v.eng.Next(v.sr) * v.gain
		for range channels {
			dst[idx] = s
			idx++
		}
	}

	return frames, nil
}

// WriteWAV renders duration worth of audio offline and writes it to w as
// a 16-bit PCM WAV file at the voice's sample rate. Rendering advances
// the voice's state exactly as real-time playback would.
func (v *Voice) WriteWAV(w io.Writer, duration time.Duration, channels int) error {
	if duration <= 0 {
		return fmt.Errorf("%w: %v", ErrNonPositiveDuration, duration)
	}
	if channels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}

	frames := int(float64(v.sr) * duration.Seconds())
	if frames < 1 {
		frames = 1
	}

	// Render in blocks, collecting all samples before the one-shot
	// encoder call (the header needs the total size up front).
	const blockFrames = 4096
	block := make([]float32, blockFrames*channels)
	pcm16 := make([]int16, 0, frames*channels)

	remaining := frames
	for remaining > 0 {
		n := min(remaining, blockFrames)
		if _, err := v.RenderInterleaved(block, n, channels); err != nil {
			return fmt.Errorf("%w", err)
		}

		start := len(pcm16)
		pcm16 = pcm16[:start+n*channels]
		utils.Float32BufToInt16(pcm16[start:], block[:n*channels])

		remaining -= n
	}

	if err := wav.WriteWAV16(w, int(v.sr), channels, pcm16); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
