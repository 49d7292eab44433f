// SPDX-License-Identifier: EPL-2.0

package audiobatch

import (
	"fmt"

	"github.com/ik5/audiobatch/audio"
	"github.com/ik5/audiobatch/batch"
	"github.com/ik5/audiobatch/formats/aiff"
	"github.com/ik5/audiobatch/formats/flac"
	"github.com/ik5/audiobatch/formats/mp3"
	"github.com/ik5/audiobatch/formats/vorbis"
	"github.com/ik5/audiobatch/formats/wav"
)

// DefaultRegistry returns a decoder registry with every built-in format
// registered under its usual file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// ProcessFile is a high-level convenience function that runs the full
// pipeline on a single file with cfg's options, writing the result to
// destPath.
//
// The pipeline is the same one the batch runner uses per file:
//  1. Decode srcPath with the decoder matching its extension
//  2. Trim leading/trailing silence (when cfg.TrimSilence)
//  3. Normalize integrated loudness to cfg.TargetLUFS (when cfg.Normalize)
//  4. Resample to cfg.SampleRate and requantize to cfg.BitDepth
//  5. Encode as WAV to destPath
//
// For processing whole directory trees, use batch.Runner directly.
//
// Example:
//
//	cfg := batch.Default()
//	cfg.Normalize = true
//	err := audiobatch.ProcessFile("in/song.flac", "out/song.wav", cfg)
func ProcessFile(srcPath, destPath string, cfg batch.Config) error {
	runner, err := batch.NewRunner(cfg, DefaultRegistry(), nil)
	if err != nil {
		return err
	}

	outcome := runner.Process(batch.Job{
		SourcePath: srcPath,
		DestPath:   destPath,
		Config:     &cfg,
	})

	if outcome.Status == batch.StatusFailed || outcome.Status == batch.StatusSkipped {
		if outcome.Err != nil {
			return fmt.Errorf("%w", outcome.Err)
		}
		return fmt.Errorf("processing %s failed", srcPath)
	}

	return nil
}
