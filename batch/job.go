// SPDX-License-Identifier: EPL-2.0

package batch

// Status is the terminal state of one job.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Job is one input file's trip through the pipeline. Each job owns its
// own decoded audio while it runs; nothing is shared between jobs except
// the read-only Config.
type Job struct {
	SourcePath string
	DestPath   string
	Config     *Config
}

// Outcome records a job's terminal state. Pipeline errors are carried
// here instead of propagating: one bad file never aborts its siblings.
type Outcome struct {
	SourcePath string
	Status     Status
	Err        error
}

// Failure is one failed path with a human-readable reason.
type Failure struct {
	SourcePath string
	Reason     string
}

// Report aggregates every outcome of a batch run. Exactly one outcome
// is counted per submitted job, whatever order they arrive in.
type Report struct {
	TotalJobs int
	Succeeded int
	Skipped   int
	Failed    int
	Failures  []Failure
}

func (r *Report) add(o Outcome) {
	switch o.Status {
	case StatusSuccess:
		r.Succeeded++
	case StatusSkipped:
		r.Skipped++
	case StatusFailed:
		r.Failed++
		reason := "unknown error"
		if o.Err != nil {
			reason = o.Err.Error()
		}
		r.Failures = append(r.Failures, Failure{
			SourcePath: o.SourcePath,
			Reason:     reason,
		})
	}
}

// OK reports whether the whole run finished without failures.
func (r *Report) OK() bool {
	return r.Failed == 0
}
