// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to parse FLAC streams frame by
// frame. FLAC stores samples planar (one subframe per channel); the source
// interleaves them into the float32 layout the rest of the pipeline uses.
//
// # Decoding FLAC Files
//
// Use the Decoder to read FLAC files:
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0], and reports the stream's bit depth
// (commonly 16 or 24) through audio.DepthReporter.
//
// # Limitations
//
// FLAC writing is not supported (decoding only).
package flac
