// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/audiobatch/audio"
	"github.com/ik5/audiobatch/formats/wav"
)

// Runner owns one batch run: it discovers input files, builds a job per
// file, drives the scheduler, and hands back the report. Decoders are
// resolved by file extension through the registry.
type Runner struct {
	cfg      Config
	registry *audio.Registry
	log      *slog.Logger
}

// NewRunner validates cfg and builds a runner. A validation failure here
// is fatal for the run; no job is ever scheduled with a bad config.
// A nil logger falls back to slog.Default().
func NewRunner(cfg Config, registry *audio.Registry, log *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if registry == nil {
		return nil, errors.New("nil decoder registry")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Runner{cfg: cfg, registry: registry, log: log}, nil
}

// Run processes every supported file under inputPath (or inputPath
// itself when it is a single file) and returns the aggregated report.
// It returns ErrNoFiles when there is nothing to do.
func (r *Runner) Run(inputPath string) (*Report, error) {
	files, baseDir, err := CollectFiles(inputPath, func(ext string) bool {
		_, ok := r.registry.Get(ext)
		return ok
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	outDir := r.cfg.OutputDir
	if outDir == "" {
		outDir = filepath.Join(baseDir, "processed_audio")
	}

	jobs := make([]Job, 0, len(files))
	for _, file := range files {
		dest, err := OutputPath(file, baseDir, outDir)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, Job{SourcePath: file, DestPath: dest, Config: &r.cfg})
	}

	workers := r.cfg.Workers()
	r.log.Debug("batch starting", "files", len(jobs), "workers", workers, "output", outDir)

	sched := &Scheduler{Process: r.Process, Log: r.log}
	return sched.Run(jobs, workers), nil
}

// Process runs the full transform sequence for one file:
// decode, optional trim, optional normalize, convert, encode.
// Every error is captured in the outcome; nothing escapes the job.
func (r *Runner) Process(job Job) Outcome {
	outcome := Outcome{SourcePath: job.SourcePath}
	cfg := job.Config

	fail := func(err error) Outcome {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}

	buf, err := r.decode(job.SourcePath)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			outcome.Status = StatusSkipped
			outcome.Err = err
			return outcome
		}
		return fail(err)
	}

	if cfg.TrimSilence {
		buf = audio.Trim(buf, cfg.SilenceThreshDb)
	}

	if cfg.Normalize {
		buf, err = audio.Normalize(buf, cfg.TargetLUFS)
		if err != nil {
			return fail(fmt.Errorf("normalizing %s: %w", job.SourcePath, err))
		}
	}

	buf, err = audio.Convert(buf, cfg.SampleRate, cfg.BitDepth)
	if err != nil {
		return fail(fmt.Errorf("converting %s: %w", job.SourcePath, err))
	}

	if err := encode(buf, job.DestPath); err != nil {
		return fail(fmt.Errorf("encoding %s: %w", job.DestPath, err))
	}

	outcome.Status = StatusSuccess
	return outcome
}

// decode opens the file, resolves a decoder by extension and drains the
// stream into a buffer. The file handle and source are released before
// returning on every path.
func (r *Runner) decode(path string) (*audio.Buffer, error) {
	ext := Ext(path)
	dec, ok := r.registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return buf, nil
}

// encode writes the buffer as WAV to dest, creating parent directories.
// The data goes to a temp file first and is renamed into place on
// success, so a failed job never leaves a partial destination file.
func encode(buf *audio.Buffer, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("%w", err)
	}

	tmp := dest + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.Write(f, buf.SampleRate, buf.Channels, buf.BitDepth, buf.Data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w", err)
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w", err)
	}

	return nil
}
