// SPDX-License-Identifier: EPL-2.0

// Command audiobatch converts a directory tree (or single file) of audio
// files to normalized PCM WAV.
//
// Usage:
//
//	audiobatch [flags] <input>
//
// Input may be a directory (walked recursively) or a single audio file.
// Processed files land under -o, mirroring the input tree, always as
// .wav. Exit status is 0 when every file succeeded, 1 otherwise.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/audiobatch"
	"github.com/ik5/audiobatch/batch"
)

const debugLogName = "audiobatch.debug.log"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := batch.Default()

	fs := flag.NewFlagSet("audiobatch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.OutputDir, "o", "", "output directory (default <input>/processed_audio)")
	fs.IntVar(&cfg.SampleRate, "r", cfg.SampleRate, "target sample rate in Hz")
	fs.IntVar(&cfg.BitDepth, "b", cfg.BitDepth, "target bit depth (16, 24 or 32)")
	fs.BoolVar(&cfg.TrimSilence, "t", false, "trim leading and trailing silence")
	fs.BoolVar(&cfg.Normalize, "n", false, "normalize loudness to the target LUFS")
	fs.Float64Var(&cfg.TargetLUFS, "target-lufs", cfg.TargetLUFS, "integrated loudness target in LUFS")
	fs.Float64Var(&cfg.SilenceThreshDb, "silence-thresh", cfg.SilenceThreshDb, "silence threshold in dB below full scale")
	fs.IntVar(&cfg.Jobs, "j", cfg.Jobs, "parallel jobs (capped at CPU count)")
	debug := fs.Bool("debug", false, "write a debug log to "+debugLogName)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <input>\n\n", fs.Name())
		fmt.Fprintln(stderr, "Convert a directory tree or single audio file to normalized PCM WAV.")
		fmt.Fprintln(stderr, "Supported inputs: wav, flac, mp3, ogg, aiff, aif.")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	input := fs.Arg(0)

	log, closeLog, err := newLogger(stderr, *debug)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	defer closeLog()

	runner, err := batch.NewRunner(cfg, audiobatch.DefaultRegistry(), log)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	report, err := runner.Run(input)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	printReport(stdout, report)
	if !report.OK() {
		return 1
	}
	return 0
}

// newLogger builds the run's logger. Without -debug only warnings and
// errors reach stderr; with it, everything down to debug level is also
// copied into a log file in the working directory.
func newLogger(stderr io.Writer, debug bool) (*slog.Logger, func(), error) {
	if !debug {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		return slog.New(h), func() {}, nil
	}

	f, err := os.Create(debugLogName)
	if err != nil {
		return nil, nil, fmt.Errorf("creating debug log: %w", err)
	}

	h := slog.NewTextHandler(io.MultiWriter(stderr, f), &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}

func printReport(w io.Writer, report *batch.Report) {
	fmt.Fprintf(w, "%d file(s): %d succeeded, %d skipped, %d failed\n",
		report.TotalJobs, report.Succeeded, report.Skipped, report.Failed)

	for _, failure := range report.Failures {
		fmt.Fprintf(w, "  FAILED %s: %s\n", failure.SourcePath, failure.Reason)
	}
}
