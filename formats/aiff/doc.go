// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
// Currently supported:
//   - PCM at 16, 24 and 32 bits per sample
//   - Mono and multichannel
//   - Any sample rate
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0], and reports the file's bit
// depth through audio.DepthReporter.
//
// # Seeking
//
// go-audio needs an io.ReadSeeker. When the input reader cannot seek the
// decoder buffers the whole stream in memory first.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: The bit depth is not 16, 24 or 32
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//
// # Limitations
//
// AIFF writing is not supported (decoding only).
package aiff
