// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audiobatch/utils"
)

// Write encodes interleaved float32 samples in [-1, 1] as a PCM WAV file
// at the given sample rate, channel count and bit depth (16, 24 or 32).
// Samples are quantized with rounding. An empty slice produces a valid
// header-only file.
func Write(ws io.WriteSeeker, sampleRate, channels, bitDepth int, samples []float32) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return ErrUnsupportedBitDepth
	}
	if channels < 1 {
		channels = 1
	}

	enc := gowav.NewEncoder(ws, sampleRate, bitDepth, channels, 1)

	// Convert and hand samples to the encoder in chunks to bound memory.
	const chunkSize = 8192
	ints := make([]int, min(len(samples), chunkSize))
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]

		for j, s := range chunk {
			ints[j] = utils.FloatToPCM(s, bitDepth)
		}
		buf.Data = ints[:len(chunk)]

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
