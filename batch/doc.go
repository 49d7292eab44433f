// SPDX-License-Identifier: EPL-2.0

// Package batch runs the per-file audio pipeline over many files at once.
//
// The moving parts, leaves first:
//   - Config: one run's immutable options (targets, toggles, worker count)
//   - Job: one input file plus its destination and the shared Config
//   - Outcome / Report: per-job terminal state and the aggregated result
//   - Scheduler: bounded worker pool with per-job failure isolation
//   - Runner: discovery, job construction, scheduling, reporting
//
// # Pipeline
//
// Each job runs the same fixed sequence on its own decoded buffer:
//
//	decode -> trim (optional) -> normalize (optional) -> convert -> encode
//
// Decoding picks a decoder from an audio.Registry by file extension.
// Conversion (resample + requantize) always runs; with targets matching
// the source it is a no-op. Output is always WAV, written atomically via
// a temp file so a failure never leaves a partial destination.
//
// # Concurrency
//
// Config.Jobs <= 1 processes files sequentially in discovery order.
// Higher values run a fixed pool of workers (capped at the CPU count)
// pulling from a shared queue. Jobs never share mutable state: each owns
// its buffer and file handles, and the Config is read-only. One job
// failing is recorded in the report and has no effect on the others; the
// scheduler always drains every submitted job before reporting.
//
// # Errors
//
// An invalid Config fails NewRunner before anything is scheduled.
// Everything after that — unreadable input, decode errors, disk errors
// on write — is captured per job as a Failed outcome with the path and
// reason listed in Report.Failures. Callers derive their exit status
// from Report.OK().
//
// # Usage
//
//	runner, err := batch.NewRunner(cfg, audiobatch.DefaultRegistry(), logger)
//	if err != nil {
//	    // bad configuration, nothing ran
//	}
//	report, err := runner.Run(inputDir)
package batch
