// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"log/slog"
	"sync"
)

// Scheduler fans jobs out over a bounded worker pool and aggregates
// their outcomes into a Report.
//
// With one worker, jobs run sequentially on the calling goroutine in
// submission order — the deterministic reference behavior. With two or
// more, a fixed pool pulls jobs from a shared queue; each worker runs a
// job's full pipeline before taking the next, and outcome order across
// workers is unspecified. Either way the scheduler waits for every
// submitted job to reach a terminal state, and a job failure never
// cancels or blocks the rest of the batch.
type Scheduler struct {
	// Process runs one job to completion. It must capture errors in the
	// Outcome rather than panic; the scheduler does not recover.
	Process func(Job) Outcome

	// Log receives per-job trace events. Nil disables tracing.
	Log *slog.Logger
}

// Run executes all jobs on at most workers concurrent execution units
// and returns the aggregated report. It blocks until every job is done.
func (s *Scheduler) Run(jobs []Job, workers int) *Report {
	report := &Report{TotalJobs: len(jobs)}

	if workers <= 1 {
		for _, job := range jobs {
			report.add(s.runOne(job))
		}
		return report
	}

	if workers > len(jobs) {
		workers = len(jobs)
	}

	queue := make(chan Job)
	outcomes := make(chan Outcome)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				outcomes <- s.runOne(job)
			}
		}()
	}

	go func() {
		for _, job := range jobs {
			queue <- job
		}
		close(queue)
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	for outcome := range outcomes {
		report.add(outcome)
	}

	return report
}

func (s *Scheduler) runOne(job Job) Outcome {
	if s.Log != nil {
		s.Log.Debug("job started", "source", job.SourcePath, "dest", job.DestPath)
	}

	outcome := s.Process(job)

	if s.Log != nil {
		switch outcome.Status {
		case StatusFailed:
			s.Log.Warn("job failed", "source", outcome.SourcePath, "error", outcome.Err)
		default:
			s.Log.Debug("job done", "source", outcome.SourcePath, "status", string(outcome.Status))
		}
	}

	return outcome
}
