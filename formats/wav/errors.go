package wav

import "errors"

var (
	ErrInvalidSampleRate   = errors.New("invalid sample rate")
	ErrInvalidChannelCount = errors.New("invalid channel count")
)
