// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Trim removes leading and trailing silence from buf.
//
// thresholdDb is a positive dB magnitude (e.g. 60 means frames quieter than
// -60 dBFS count as silence). A frame's level is its peak: the largest
// absolute sample across all channels. Scanning runs frame-by-frame from the
// start until the first frame at or above the threshold, and symmetrically
// from the end.
//
// A buffer that is silent throughout trims to an empty buffer with zero
// frames. That is a valid result, not an error. Sample rate, bit depth and
// channel count are never changed.
func Trim(buf *Buffer, thresholdDb float64) *Buffer {
	floor := float32(math.Pow(10, -thresholdDb/20))
	frames := buf.Frames()
	channels := buf.Channels

	start := frames
	for f := 0; f < frames; f++ {
		if framePeak(buf.Data, f, channels) >= floor {
			start = f
			break
		}
	}

	if start == frames {
		// Fully silent input.
		return &Buffer{
			Data:       nil,
			SampleRate: buf.SampleRate,
			BitDepth:   buf.BitDepth,
			Channels:   channels,
		}
	}

	end := start
	for f := frames - 1; f >= start; f-- {
		if framePeak(buf.Data, f, channels) >= floor {
			end = f
			break
		}
	}

	data := make([]float32, (end-start+1)*channels)
	copy(data, buf.Data[start*channels:(end+1)*channels])

	return &Buffer{
		Data:       data,
		SampleRate: buf.SampleRate,
		BitDepth:   buf.BitDepth,
		Channels:   channels,
	}
}

func framePeak(data []float32, frame, channels int) float32 {
	peak := float32(0)
	base := frame * channels
	for c := 0; c < channels; c++ {
		v := data[base+c]
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
