package playback

import "errors"

var (
	ErrNoRenderer          = errors.New("renderer must not be nil")
	ErrInvalidSampleRate   = errors.New("invalid sample rate")
	ErrInvalidChannelCount = errors.New("invalid channel count")
)
