// SPDX-License-Identifier: EPL-2.0

package ambientor

import "errors"

var (
	// ErrInvalidChannelCount is returned when a render is requested with
	// fewer than one output channel.
	ErrInvalidChannelCount = errors.New("channel count must be at least 1")

	// ErrNonPositiveDuration is returned when an offline render is
	// requested for a zero or negative duration.
	ErrNonPositiveDuration = errors.New("render duration must be positive")

	// ErrShortBuffer is returned when a destination buffer cannot hold
	// the requested frames*channels samples.
	ErrShortBuffer = errors.New("destination buffer too small for requested frames")
)
