// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize     = errors.New("dst size must be multiple of channels")
	ErrLoudnessUndefined  = errors.New("integrated loudness is undefined for this buffer")
	ErrInvalidTargetRate  = errors.New("target sample rate must be positive")
	ErrInvalidTargetDepth = errors.New("target bit depth must be 16, 24 or 32")
	ErrInvalidBuffer      = errors.New("buffer length must be a multiple of channels")
)
