// SPDX-License-Identifier: EPL-2.0

// Package playback plays rendered audio on the default output device.
//
// It is a thin pull-model host around github.com/ebitengine/oto: the oto
// player requests bytes, the Player renders interleaved float32 frames
// from a Renderer (an ambientor.Voice satisfies the interface) and
// encodes them as little-endian float32 PCM.
//
// # Usage
//
//	v := ambientor.New(48000)
//	p, err := playback.NewPlayer(v, 48000, 2)
//	if err != nil {
//	    // no audio device, context already claimed, ...
//	}
//	p.Start()
//	time.Sleep(30 * time.Second)
//	p.Close()
//
// # Constraints
//
// oto allows one audio context per process, so create at most one Player
// and reuse it. The Renderer is called from oto's reader goroutine; do
// not touch the same Voice from other goroutines while playing.
package playback
