package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// decodeAll runs our encoder output through the go-audio decoder and
// returns the full PCM buffer.
func decodeAll(t *testing.T, data []byte) *goaudio.IntBuffer {
	t.Helper()

	dec := gowav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		t.Fatal("go-audio decoder rejected encoder output")
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	return pcm
}

func TestWriteWAV16_ValidFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 200, -200}
	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 8000, 1, samples)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	// Verify RIFF header
	if buf.Len() < 44 {
		t.Fatalf("WAV file too small: %d bytes", buf.Len())
	}

	data := buf.Bytes()
	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	samples := []int16{}
	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 8000, 1, samples)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	// Should still create valid WAV header
	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_CorrectHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		samples    []int16
	}{
		{
			name:       "mono 44100",
			sampleRate: 44100,
			channels:   1,
			samples:    []int16{100, 200, 300, 400},
		},
		{
			name:       "stereo 48000",
			sampleRate: 48000,
			channels:   2,
			samples:    []int16{100, 100, -200, -200},
		},
		{
			name:       "quad 8000",
			sampleRate: 8000,
			channels:   4,
			samples:    []int16{1, 2, 3, 4, 5, 6, 7, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := WriteWAV16(buf, tt.sampleRate, tt.channels, tt.samples); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			data := buf.Bytes()
			dataSize := uint32(len(tt.samples) * 2)

			if got := binary.LittleEndian.Uint32(data[4:8]); got != 36+dataSize {
				t.Errorf("RIFF size = %v, want %v", got, 36+dataSize)
			}
			if got := binary.LittleEndian.Uint16(data[20:22]); got != 1 {
				t.Errorf("audio format = %v, want 1 (PCM)", got)
			}
			if got := binary.LittleEndian.Uint16(data[22:24]); got != uint16(tt.channels) {
				t.Errorf("channels = %v, want %v", got, tt.channels)
			}
			if got := binary.LittleEndian.Uint32(data[24:28]); got != uint32(tt.sampleRate) {
				t.Errorf("sample rate = %v, want %v", got, tt.sampleRate)
			}

			wantByteRate := uint32(tt.sampleRate) * uint32(tt.channels) * 2
			if got := binary.LittleEndian.Uint32(data[28:32]); got != wantByteRate {
				t.Errorf("byte rate = %v, want %v", got, wantByteRate)
			}
			if got := binary.LittleEndian.Uint16(data[32:34]); got != uint16(tt.channels)*2 {
				t.Errorf("block align = %v, want %v", got, tt.channels*2)
			}
			if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
				t.Errorf("bits per sample = %v, want 16", got)
			}
			if got := binary.LittleEndian.Uint32(data[40:44]); got != dataSize {
				t.Errorf("data size = %v, want %v", got, dataSize)
			}
		})
	}
}

func TestWriteWAV16_SampleData(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, 32767, -32768}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 48000, 1, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()[44:]
	if len(data) != len(samples)*2 {
		t.Fatalf("data section size = %v, want %v", len(data), len(samples)*2)
	}

	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
		if got != want {
			t.Errorf("sample %v = %v, want %v", i, got, want)
		}
	}
}

func TestWriteWAV16_LargeFile(t *testing.T) {
	t.Parallel()

	// Larger than one write chunk, exercises the chunked sample loop.
	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 48000, 1, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if buf.Len() != 44+len(samples)*2 {
		t.Errorf("file size = %v, want %v", buf.Len(), 44+len(samples)*2)
	}

	data := buf.Bytes()[44:]
	for _, i := range []int{0, 8191, 8192, 19999} {
		got := int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
		if want := int16(i % 1000); got != want {
			t.Errorf("sample %v = %v, want %v", i, got, want)
		}
	}
}

func TestWriteWAV16_InvalidArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		wantErr    error
	}{
		{
			name:       "zero sample rate",
			sampleRate: 0,
			channels:   1,
			wantErr:    ErrInvalidSampleRate,
		},
		{
			name:       "negative sample rate",
			sampleRate: -48000,
			channels:   1,
			wantErr:    ErrInvalidSampleRate,
		},
		{
			name:       "zero channels",
			sampleRate: 48000,
			channels:   0,
			wantErr:    ErrInvalidChannelCount,
		},
		{
			name:       "negative channels",
			sampleRate: 48000,
			channels:   -2,
			wantErr:    ErrInvalidChannelCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			err := WriteWAV16(buf, tt.sampleRate, tt.channels, []int16{1, 2})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("WriteWAV16() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestWriteWAV16_DecodesWithGoAudio round-trips the encoder output
// through the go-audio decoder.
func TestWriteWAV16_DecodesWithGoAudio(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1000, -1000, 32767, -32768, 500, 500}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 22050, 1, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	pcm := decodeAll(t, buf.Bytes())

	if pcm.Format.SampleRate != 22050 {
		t.Errorf("decoded sample rate = %v, want 22050", pcm.Format.SampleRate)
	}
	if pcm.Format.NumChannels != 1 {
		t.Errorf("decoded channels = %v, want 1", pcm.Format.NumChannels)
	}
	if len(pcm.Data) != len(samples) {
		t.Fatalf("decoded %v samples, want %v", len(pcm.Data), len(samples))
	}

	for i, want := range samples {
		if pcm.Data[i] != int(want) {
			t.Errorf("decoded sample %v = %v, want %v", i, pcm.Data[i], want)
		}
	}
}

// TestWriteWAV16_DecodesStereo makes sure interleaved frames survive a
// go-audio round trip with the channel count intact.
func TestWriteWAV16_DecodesStereo(t *testing.T) {
	t.Parallel()

	// L/R pairs
	samples := []int16{100, -100, 200, -200, 300, -300}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 48000, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	pcm := decodeAll(t, buf.Bytes())

	if pcm.Format.NumChannels != 2 {
		t.Errorf("decoded channels = %v, want 2", pcm.Format.NumChannels)
	}
	if len(pcm.Data) != len(samples) {
		t.Fatalf("decoded %v samples, want %v", len(pcm.Data), len(samples))
	}
	for i, want := range samples {
		if pcm.Data[i] != int(want) {
			t.Errorf("decoded sample %v = %v, want %v", i, pcm.Data[i], want)
		}
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 48000)
	for i := range samples {
		samples[i] = int16(i % 2000)
	}

	b.ReportAllocs()

	for range b.N {
		buf := bytes.NewBuffer(make([]byte, 0, 44+len(samples)*2))
		if err := WriteWAV16(buf, 48000, 1, samples); err != nil {
			b.Fatal(err)
		}
	}
}
