package flac

import "errors"

var (
	// ErrNotFlacFile indicates the file is not a valid FLAC stream
	ErrNotFlacFile = errors.New("not a FLAC file")
)
