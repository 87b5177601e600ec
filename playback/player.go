// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Renderer produces interleaved float32 audio. ambientor.Voice satisfies
// this interface.
type Renderer interface {
	RenderInterleaved(dst []float32, frames, channels int) (int, error)
}

// Player streams a Renderer to the default output device.
type Player struct {
	ctx      *oto.Context
	player   *oto.Player
	renderer Renderer
	channels int
	frameBuf []float32

	mutex   sync.Mutex // setup/control only; Read runs lock-free
	started bool
}

// NewPlayer opens the audio device at sampleRate with the given channel
// count and prepares a player pulling from r. It blocks until the device
// context is ready.
func NewPlayer(r Renderer, sampleRate, channels int) (*Player, error) {
	if r == nil {
		return nil, fmt.Errorf("%w", ErrNoRenderer)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	<-ready

	p := &Player{
		ctx:      ctx,
		renderer: r,
		channels: channels,
		// Pre-allocate for typical oto request sizes; Read grows it
		// once if the device asks for more.
		frameBuf: make([]float32, 4096*channels),
	}
	p.player = ctx.NewPlayer(p)

	return p, nil
}

// Read renders the next block and encodes it as little-endian float32
// PCM. Called by oto from its own goroutine.
func (p *Player) Read(dst []byte) (int, error) {
	bytesPerFrame := 4 * p.channels
	frames := len(dst) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	samples := frames * p.channels
	if len(p.frameBuf) < samples {
		p.frameBuf = make([]float32, samples)
	}
	buf := p.frameBuf[:samples]

	if _, err := p.renderer.RenderInterleaved(buf, frames, p.channels); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	for i, s := range buf {
		binary.LittleEndian.PutUint32(dst[i*4:i*4+4], math.Float32bits(s))
	}

	return samples * 4, nil
}

// Start begins playback. Calling Start on a playing player is a no-op.
func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
	}
}

// IsStarted reports whether playback is running.
func (p *Player) IsStarted() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.started
}

// Close stops playback and releases the device player. The oto context
// itself stays alive for the rest of the process.
func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.started = false
	if p.player != nil {
		if err := p.player.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
		p.player = nil
	}

	return nil
}
