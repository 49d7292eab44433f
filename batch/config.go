// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"runtime"
)

// Config holds the processing options for one batch run. It is built
// once, validated before any job starts, and shared read-only by every
// worker; nothing mutates it after that.
type Config struct {
	// OutputDir receives the processed files, mirroring the input tree.
	// Empty means <input>/processed_audio.
	OutputDir string

	// SampleRate is the target sample rate in Hz.
	SampleRate int

	// BitDepth is the target bit depth: 16, 24 or 32.
	BitDepth int

	// TrimSilence strips leading/trailing silence before normalizing.
	TrimSilence bool

	// Normalize rescales each file to TargetLUFS integrated loudness.
	Normalize bool

	// TargetLUFS is the loudness target, e.g. -12.0.
	TargetLUFS float64

	// SilenceThreshDb is the trim threshold as a positive dB magnitude
	// below full scale, e.g. 60 means -60 dBFS.
	SilenceThreshDb float64

	// Jobs is the requested worker count; 1 runs sequentially.
	Jobs int
}

// Default returns the configuration matching the CLI defaults.
func Default() Config {
	return Config{
		SampleRate:      44100,
		BitDepth:        16,
		TargetLUFS:      -12.0,
		SilenceThreshDb: 60.0,
		Jobs:            1,
	}
}

// Validate checks the configuration before any job is scheduled.
// An invalid configuration is fatal for the whole run.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}

	switch c.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("bit depth must be 16, 24 or 32, got %d", c.BitDepth)
	}

	if c.SilenceThreshDb <= 0 {
		return fmt.Errorf("silence threshold must be a positive dB magnitude, got %g", c.SilenceThreshDb)
	}

	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}

	return nil
}

// Workers returns the effective worker count: Jobs capped at the number
// of CPUs, never below 1.
func (c Config) Workers() int {
	workers := c.Jobs
	if n := runtime.NumCPU(); workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
