package inject

import (
	"time"

	"whitecore/core/tree"
	"whitecore/feature/items"
	"whitecore/feature/traders"
)

// Status is the result of one item or trader.
type Status string

const (
	StatusApplied Status = "applied"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Kind says what an outcome is about.
type Kind string

const (
	KindItem   Kind = "item"
	KindTrader Kind = "trader"
)

// Run statuses.
const (
	RunOK      = "ok"
	RunAborted = "aborted"
)

// Outcome is the result of processing one mod item or trader.
type Outcome struct {
	Kind   Kind         `json:"kind"`
	ID     string       `json:"id"`
	Status Status       `json:"status"`
	Error  string       `json:"error,omitempty"`
	Issues []tree.Issue `json:"issues,omitempty"`

	Clone       *items.CloneResult   `json:"clone,omitempty"`
	Propagation *items.Propagation   `json:"propagation,omitempty"`
	Languages   int                  `json:"languages,omitempty"`
	Assort      *traders.MergeResult `json:"assort,omitempty"`
}

// Summary counts outcomes by status.
type Summary struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
	Issues  int `json:"issues"`
}

// Report aggregates the outcomes of one pass.
type Report struct {
	RunID      string    `json:"run_id"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Outcomes   []Outcome `json:"outcomes"`
	Summary    Summary   `json:"summary"`
}

func newReport(runID string) *Report {
	return &Report{
		RunID:     runID,
		Status:    RunOK,
		StartedAt: time.Now(),
		Outcomes:  []Outcome{},
	}
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusApplied:
		r.Summary.Applied++
	case StatusSkipped:
		r.Summary.Skipped++
	case StatusFailed:
		r.Summary.Failed++
	}
	r.Summary.Issues += len(o.Issues)
}

func (r *Report) abort(err error) {
	r.Status = RunAborted
	r.Error = err.Error()
}

func (r *Report) finish() {
	r.FinishedAt = time.Now()
}

// Duration returns how long the pass took.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Outcome returns the outcome for id of the given kind.
func (r *Report) Outcome(kind Kind, id string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Kind == kind && o.ID == id {
			return o, true
		}
	}
	return Outcome{}, false
}
