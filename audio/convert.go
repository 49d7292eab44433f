// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// Convert brings buf to the target sample rate and bit depth, in that
// order: resample first (cubic interpolation via Resampler), then
// requantize. Each step is a no-op when the buffer is already at its
// target, so converting twice with the same targets is idempotent.
// Channel count and relative timing are preserved.
func Convert(buf *Buffer, targetRate, targetDepth int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidTargetRate
	}
	switch targetDepth {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidTargetDepth
	}

	out := buf
	if out.SampleRate != targetRate {
		resampled, err := resampleBuffer(out, targetRate)
		if err != nil {
			return nil, err
		}
		out = resampled
	}

	if out.BitDepth != targetDepth {
		out = Requantize(out, targetDepth)
	}

	return out, nil
}

// Requantize snaps every sample to the nearest representable step of the
// target bit depth. Values are rounded, not truncated, and clamped to
// [-1, FullScale(targetDepth)]. Requantizing an already-snapped buffer
// returns the same values.
func Requantize(buf *Buffer, targetDepth int) *Buffer {
	scale := float64(int64(1) << (targetDepth - 1))
	hi := FullScale(targetDepth)

	data := make([]float32, len(buf.Data))
	for i, s := range buf.Data {
		v := math.Round(float64(s)*scale) / scale
		if v > hi {
			v = hi
		} else if v < -1 {
			v = -1
		}
		data[i] = float32(v)
	}

	return &Buffer{
		Data:       data,
		SampleRate: buf.SampleRate,
		BitDepth:   targetDepth,
		Channels:   buf.Channels,
	}
}

// resampleBuffer runs the streaming Resampler over an in-memory buffer.
func resampleBuffer(buf *Buffer, targetRate int) (*Buffer, error) {
	resampler := NewResampler(buf.Source(), targetRate)

	// Pre-size for the expected output length.
	expected := int(float64(len(buf.Data)) * float64(targetRate) / float64(buf.SampleRate))
	data := make([]float32, 0, expected+buf.Channels)
	tmp := make([]float32, 1024*buf.Channels)

	for {
		n, err := resampler.ReadSamples(tmp)
		if n > 0 {
			data = append(data, tmp[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &Buffer{
		Data:       data,
		SampleRate: targetRate,
		BitDepth:   buf.BitDepth,
		Channels:   buf.Channels,
	}, nil
}
