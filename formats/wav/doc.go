// SPDX-License-Identifier: EPL-2.0

// Package wav encodes 16-bit PCM audio as WAV files.
//
// The encoder writes the canonical 44-byte-header layout: a RIFF
// header, a single 16-byte PCM fmt chunk, and one data chunk.  Any
// sample rate and channel count are supported; multi-channel audio is
// expected in channel-interleaved frame order.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 48000, 1, samples)
//
// The function writes a complete WAV file with proper headers.
//
// # Error Handling
//
// The package defines two error values:
//   - ErrInvalidSampleRate: sample rate is zero or negative
//   - ErrInvalidChannelCount: channel count is below one
//
// Both are returned wrapped, so use errors.Is to test for them.
//
// # Performance
//
// The encoder is highly optimized:
//   - Near-zero allocations per file
//   - Chunked writing for large files
//   - Pre-allocated header buffer
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: actual audio samples
//
// The WriteWAV16 function handles all format details automatically.
package wav
