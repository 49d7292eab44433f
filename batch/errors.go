package batch

import "errors"

var (
	ErrNoFiles           = errors.New("no supported audio files found")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
