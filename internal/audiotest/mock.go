// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// MockGenerator is a test helper that produces a scripted mono signal.
// It satisfies the engine's Generator contract (without importing it to
// avoid cycles) and records how it was driven.
type MockGenerator struct {
	waveform func(sample int, sampleRate float32) float32

	index int

	ResetCalls int
	NextCalls  int
	LastRate   float32
}

// NewMockGenerator creates a mock generator driven by waveform, which
// receives the running sample index and the rate from the latest Reset.
func NewMockGenerator(waveform func(sample int, sampleRate float32) float32) *MockGenerator {
	return &MockGenerator{waveform: waveform}
}

// NewConstantGenerator creates a mock generator that always emits value.
func NewConstantGenerator(value float32) *MockGenerator {
	return NewMockGenerator(func(int, float32) float32 {
		return value
	})
}

// NewSineGenerator creates a mock generator that emits a sine at
// frequency Hz, restarted on Reset.
func NewSineGenerator(frequency float64) *MockGenerator {
	return NewMockGenerator(func(sample int, sampleRate float32) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// Reset records the rate and restarts the scripted signal.
func (m *MockGenerator) Reset(sampleRate float32) {
	m.ResetCalls++
	m.LastRate = sampleRate
	m.index = 0
}

// Next emits the next scripted sample.
func (m *MockGenerator) Next() float32 {
	m.NextCalls++
	s := m.waveform(m.index, m.LastRate)
	m.index++
	return s
}
