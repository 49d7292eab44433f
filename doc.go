// SPDX-License-Identifier: EPL-2.0

// Package audiobatch batch-processes trees of audio files: format,
// sample-rate and bit-depth conversion, silence trimming, and loudness
// normalization, fanned out across a configurable worker pool.
//
// # Supported Formats
//
// Input is decoded by format subpackages:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - FLAC via formats/flac
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//
// Output is always PCM WAV at the configured bit depth.
//
// # Quick Start
//
// The simplest way to process a single file:
//
//	cfg := batch.Default()
//	cfg.TrimSilence = true
//	cfg.Normalize = true
//	err := audiobatch.ProcessFile("song.mp3", "song.wav", cfg)
//
// # Batch Processing
//
// For a whole directory tree, the batch package mirrors the input
// structure into an output directory and schedules one job per file:
//
//	cfg := batch.Default()
//	cfg.OutputDir = "/music/processed"
//	cfg.Jobs = 4
//
//	runner, err := batch.NewRunner(cfg, audiobatch.DefaultRegistry(), nil)
//	if err != nil {
//	    // invalid configuration
//	}
//
//	report, err := runner.Run("/music/raw")
//	// report lists every success and failure; one corrupt file never
//	// stops the rest of the batch.
//
// # Custom Pipelines
//
// The audio package exposes the individual stages (Trim, Normalize,
// Convert, Resampler) for building custom processing on decoded buffers,
// and the format packages each provide a Decoder usable on its own.
//
// The cmd/audiobatch command wraps all of this in a CLI.
package audiobatch
