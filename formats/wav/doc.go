// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package supports reading and writing WAV files in PCM format at
// 16, 24 and 32 bits per sample, mono or multichannel, at any sample
// rate. It is built on github.com/go-audio/wav.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0], and reports the file's bit depth
// through audio.DepthReporter.
//
// # Writing WAV Files
//
// Use Write to create WAV files at any supported bit depth:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Write(file, 44100, 2, 16, samples)
//
// Write needs an io.WriteSeeker because the header sizes are patched
// after the data chunk is written; *os.File works directly.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedBitDepth: The bit depth is not 16, 24 or 32
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
package wav
