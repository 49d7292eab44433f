// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
)

// Integrated loudness follows ITU-R BS.1770-4: the signal is K-weighted
// (a high-shelf stage modelling the acoustic effect of the head, then a
// high-pass stage), cut into 400 ms blocks with 75% overlap, and the gated
// mean square of the surviving blocks gives the loudness in LUFS.
const (
	gatingBlockSec     = 0.400
	gatingBlockOverlap = 0.75
	absoluteGateLUFS   = -70.0
	relativeGateLU     = -10.0
)

// biquad holds second-order IIR filter coefficients (a0 normalized out).
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// kHighShelf derives the first K-weighting stage for an arbitrary sample
// rate from the analog prototype behind the BS.1770 48 kHz coefficients.
func kHighShelf(rate float64) biquad {
	const (
		fc = 1681.9744509555319
		g  = 3.99984385397
		q  = 0.7071752369554196
	)

	k := math.Tan(math.Pi * fc / rate)
	vh := math.Pow(10, g/20)
	vb := math.Pow(vh, 0.4996667741545416)
	a0 := 1 + k/q + k*k

	return biquad{
		b0: (vh + vb*k/q + k*k) / a0,
		b1: 2 * (k*k - vh) / a0,
		b2: (vh - vb*k/q + k*k) / a0,
		a1: 2 * (k*k - 1) / a0,
		a2: (1 - k/q + k*k) / a0,
	}
}

// kHighPass derives the second K-weighting stage (low-frequency roll-off).
func kHighPass(rate float64) biquad {
	const (
		fc = 38.13547087602444
		q  = 0.5003270373238773
	)

	k := math.Tan(math.Pi * fc / rate)
	a0 := 1 + k/q + k*k

	return biquad{
		b0: 1,
		b1: -2,
		b2: 1,
		a1: 2 * (k*k - 1) / a0,
		a2: (1 - k/q + k*k) / a0,
	}
}

// apply runs the filter over one channel (transposed direct form II).
func (f biquad) apply(x []float64) {
	var z1, z2 float64
	for i, v := range x {
		y := f.b0*v + z1
		z1 = f.b1*v - f.a1*y + z2
		z2 = f.b2*v - f.a2*y
		x[i] = y
	}
}

// channelWeight returns the BS.1770 channel weighting: 1.0 for the three
// front channels, 1.41 for the surround pair.
func channelWeight(ch int) float64 {
	if ch == 3 || ch == 4 {
		return 1.41
	}
	return 1.0
}

// Measure computes the integrated loudness of buf in LUFS.
//
// It returns ErrLoudnessUndefined when loudness cannot be measured: the
// buffer is empty, shorter than one 400 ms gating block, or every block
// falls below the -70 LUFS absolute gate (i.e. the buffer is silence).
func Measure(buf *Buffer) (float64, error) {
	frames := buf.Frames()
	rate := float64(buf.SampleRate)
	blockFrames := int(gatingBlockSec * rate)
	hopFrames := int(gatingBlockSec * (1 - gatingBlockOverlap) * rate)

	if frames < blockFrames || blockFrames == 0 || hopFrames == 0 {
		return 0, ErrLoudnessUndefined
	}

	// K-weight each channel.
	shelf := kHighShelf(rate)
	highpass := kHighPass(rate)
	weighted := make([][]float64, buf.Channels)
	for c := 0; c < buf.Channels; c++ {
		x := make([]float64, frames)
		for f := 0; f < frames; f++ {
			x[f] = float64(buf.Data[f*buf.Channels+c])
		}
		shelf.apply(x)
		highpass.apply(x)
		weighted[c] = x
	}

	// Mean square per gating block, summed with channel weights.
	var blockPower []float64
	for start := 0; start+blockFrames <= frames; start += hopFrames {
		power := 0.0
		for c := 0; c < buf.Channels; c++ {
			sum := 0.0
			for _, v := range weighted[c][start : start+blockFrames] {
				sum += v * v
			}
			power += channelWeight(c) * sum / float64(blockFrames)
		}
		blockPower = append(blockPower, power)
	}

	// Absolute gate at -70 LUFS.
	absGated := gate(blockPower, absoluteGateLUFS)
	if len(absGated) == 0 {
		return 0, ErrLoudnessUndefined
	}

	// Relative gate 10 LU below the absolutely-gated mean.
	relThreshold := blockLoudness(mean(absGated)) + relativeGateLU
	relGated := gate(absGated, relThreshold)
	if len(relGated) == 0 {
		return 0, ErrLoudnessUndefined
	}

	return blockLoudness(mean(relGated)), nil
}

// Normalize rescales buf so its integrated loudness measures targetLUFS.
//
// The gain is linear: 10^((target - measured) / 20), applied to every
// sample. When the buffer's loudness is undefined (silent or too short),
// the buffer is returned unchanged — normalizing silence is not an error.
// Samples pushed past full scale are hard-clamped to the representable
// range of the buffer's bit depth; there is no limiter.
func Normalize(buf *Buffer, targetLUFS float64) (*Buffer, error) {
	measured, err := Measure(buf)
	if errors.Is(err, ErrLoudnessUndefined) {
		return buf, nil
	}
	if err != nil {
		return nil, err
	}

	gain := math.Pow(10, (targetLUFS-measured)/20)
	hi := FullScale(buf.BitDepth)
	lo := -1.0

	data := make([]float32, len(buf.Data))
	for i, s := range buf.Data {
		v := float64(s) * gain
		if v > hi {
			v = hi
		} else if v < lo {
			v = lo
		}
		data[i] = float32(v)
	}

	return &Buffer{
		Data:       data,
		SampleRate: buf.SampleRate,
		BitDepth:   buf.BitDepth,
		Channels:   buf.Channels,
	}, nil
}

// FullScale returns the largest positive sample value representable at the
// given bit depth, as a fraction of full scale: (2^(n-1)-1) / 2^(n-1).
func FullScale(bitDepth int) float64 {
	scale := float64(int64(1) << (bitDepth - 1))
	return (scale - 1) / scale
}

// blockLoudness converts a weighted mean-square power to loudness.
func blockLoudness(power float64) float64 {
	return -0.691 + 10*math.Log10(power)
}

// gate keeps the blocks whose loudness is at or above threshold (in LUFS).
func gate(power []float64, threshold float64) []float64 {
	var kept []float64
	for _, p := range power {
		if blockLoudness(p) >= threshold {
			kept = append(kept, p)
		}
	}
	return kept
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
