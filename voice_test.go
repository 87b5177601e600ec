package ambientor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewClampsSampleRate(t *testing.T) {
	t.Parallel()

	v := New(0)
	if got := v.SampleRate(); got != 1 {
		t.Errorf("SampleRate() = %v, want 1", got)
	}

	v = New(48000)
	if got := v.SampleRate(); got != 48000 {
		t.Errorf("SampleRate() = %v, want 48000", got)
	}
}

func TestVoiceSetGain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{
			name:  "normal",
			input: 0.5,
			want:  0.5,
		},
		{
			name:  "above one kept",
			input: 2.0,
			want:  2.0,
		},
		{
			name:  "negative clamps to zero",
			input: -0.5,
			want:  0.0,
		},
		{
			name:  "NaN falls back to one",
			input: float32(math.NaN()),
			want:  1.0,
		},
		{
			name:  "Inf falls back to one",
			input: float32(math.Inf(1)),
			want:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := New(48000)
			v.SetGain(tt.input)
			if got := v.Gain(); got != tt.want {
				t.Errorf("Gain() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderInterleavedErrors(t *testing.T) {
	t.Parallel()

	v := New(48000)
	dst := make([]float32, 16)

	if _, err := v.RenderInterleaved(dst, 8, 0); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("channels=0 error = %v, want ErrInvalidChannelCount", err)
	}
	if _, err := v.RenderInterleaved(dst, 8, -1); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("channels=-1 error = %v, want ErrInvalidChannelCount", err)
	}
	if _, err := v.RenderInterleaved(dst, 9, 2); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short buffer error = %v, want ErrShortBuffer", err)
	}

	// Exactly fitting buffer succeeds.
	n, err := v.RenderInterleaved(dst, 8, 2)
	if err != nil {
		t.Fatalf("RenderInterleaved() error = %v", err)
	}
	if n != 8 {
		t.Errorf("rendered %v frames, want 8", n)
	}
}

func TestRenderInterleavedDuplicatesChannels(t *testing.T) {
	t.Parallel()

	const frames = 256
	const channels = 4

	v := New(48000)
	dst := make([]float32, frames*channels)

	if _, err := v.RenderInterleaved(dst, frames, channels); err != nil {
		t.Fatalf("RenderInterleaved() error = %v", err)
	}

	for f := range frames {
		base := dst[f*channels]
		for c := 1; c < channels; c++ {
			if dst[f*channels+c] != base {
				t.Fatalf("frame %v channel %v = %v, want %v (mono duplication)",
					f, c, dst[f*channels+c], base)
			}
		}
	}
}

func TestRenderInterleavedBounded(t *testing.T) {
	t.Parallel()

	const frames = 48000

	v := New(48000)
	dst := make([]float32, frames)

	if _, err := v.RenderInterleaved(dst, frames, 1); err != nil {
		t.Fatalf("RenderInterleaved() error = %v", err)
	}

	for i, s := range dst {
		if math.IsNaN(float64(s)) {
			t.Fatalf("sample %v is NaN", i)
		}
		if s < -1 || s > 1 {
			t.Fatalf("sample %v = %v, outside [-1, 1]", i, s)
		}
	}
}

func TestRenderInterleavedDeterministic(t *testing.T) {
	t.Parallel()

	const frames = 4096

	a := New(44100)
	b := New(44100)
	bufA := make([]float32, frames)
	bufB := make([]float32, frames)

	if _, err := a.RenderInterleaved(bufA, frames, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := b.RenderInterleaved(bufB, frames, 1); err != nil {
		t.Fatal(err)
	}

	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("sample %v differs: %v vs %v", i, bufA[i], bufB[i])
		}
	}
}

func TestVoiceGainScalesOutput(t *testing.T) {
	t.Parallel()

	const frames = 1024

	loud := New(48000)
	quiet := New(48000)
	quiet.SetGain(0.5)

	bufLoud := make([]float32, frames)
	bufQuiet := make([]float32, frames)

	if _, err := loud.RenderInterleaved(bufLoud, frames, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := quiet.RenderInterleaved(bufQuiet, frames, 1); err != nil {
		t.Fatal(err)
	}

	for i := range bufLoud {
		want := bufLoud[i] * 0.5
		if diff := bufQuiet[i] - want; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("sample %v = %v, want %v", i, bufQuiet[i], want)
		}
	}
}

func TestRenderInterleavedZeroFrames(t *testing.T) {
	t.Parallel()

	v := New(48000)

	n, err := v.RenderInterleaved(nil, 0, 2)
	if err != nil {
		t.Fatalf("RenderInterleaved() error = %v", err)
	}
	if n != 0 {
		t.Errorf("rendered %v frames, want 0", n)
	}
}

func TestWriteWAVErrors(t *testing.T) {
	t.Parallel()

	v := New(48000)
	buf := new(bytes.Buffer)

	if err := v.WriteWAV(buf, 0, 1); !errors.Is(err, ErrNonPositiveDuration) {
		t.Errorf("duration=0 error = %v, want ErrNonPositiveDuration", err)
	}
	if err := v.WriteWAV(buf, -time.Second, 1); !errors.Is(err, ErrNonPositiveDuration) {
		t.Errorf("negative duration error = %v, want ErrNonPositiveDuration", err)
	}
	if err := v.WriteWAV(buf, time.Second, 0); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("channels=0 error = %v, want ErrInvalidChannelCount", err)
	}
}

func TestWriteWAVOutput(t *testing.T) {
	t.Parallel()

	const sr = 8000
	const channels = 2

	v := New(sr)
	buf := new(bytes.Buffer)

	if err := v.WriteWAV(buf, 500*time.Millisecond, channels); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) < 44 {
		t.Fatalf("WAV output too small: %v bytes", len(data))
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatal("output is not a RIFF/WAVE file")
	}

	if got := binary.LittleEndian.Uint16(data[22:24]); got != channels {
		t.Errorf("channels = %v, want %v", got, channels)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != sr {
		t.Errorf("sample rate = %v, want %v", got, sr)
	}

	// Half a second at 8 kHz stereo: 4000 frames, 2 bytes per sample.
	wantData := uint32(4000 * channels * 2)
	if got := binary.LittleEndian.Uint32(data[40:44]); got != wantData {
		t.Errorf("data size = %v, want %v", got, wantData)
	}
	if len(data) != int(44+wantData) {
		t.Errorf("file size = %v, want %v", len(data), 44+wantData)
	}
}

// TestWriteWAVMatchesRenderPath checks that the offline path encodes the
// same samples the real-time path produces.
func TestWriteWAVMatchesRenderPath(t *testing.T) {
	t.Parallel()

	const sr = 8000
	const frames = 800 // 100 ms

	live := New(sr)
	liveBuf := make([]float32, frames)
	if _, err := live.RenderInterleaved(liveBuf, frames, 1); err != nil {
		t.Fatal(err)
	}

	off := New(sr)
	wavBuf := new(bytes.Buffer)
	if err := off.WriteWAV(wavBuf, 100*time.Millisecond, 1); err != nil {
		t.Fatal(err)
	}

	data := wavBuf.Bytes()[44:]
	if len(data) != frames*2 {
		t.Fatalf("WAV data size = %v, want %v", len(data), frames*2)
	}

	for i := range frames {
		got := int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))

		x := liveBuf[i]
		if x > 1 {
			x = 1
		} else if x < -1 {
			x = -1
		}
		want := int16(x * 32767.0)

		if got != want {
			t.Fatalf("sample %v = %v, want %v", i, got, want)
		}
	}
}

// TestRenderInterleaved_ZeroAllocs verifies the block render path never
// allocates once the voice exists.
func TestRenderInterleaved_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	v := New(48000)
	dst := make([]float32, 512)

	allocs := testing.AllocsPerRun(100, func() {
		if _, err := v.RenderInterleaved(dst, 256, 2); err != nil {
			t.Fatal(err)
		}
	})

	if allocs > 0 {
		t.Errorf("RenderInterleaved allocated %v times, want 0", allocs)
	}
}

func BenchmarkRenderInterleaved(b *testing.B) {
	v := New(48000)
	dst := make([]float32, 1024)

	b.ReportAllocs()

	for range b.N {
		if _, err := v.RenderInterleaved(dst, 512, 2); err != nil {
			b.Fatal(err)
		}
	}
}
