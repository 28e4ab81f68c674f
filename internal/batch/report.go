package batch

import (
	"time"

	"github.com/roach88/wtqexec/internal/executor"
)

// Error codes recorded on results that did not come from the executor.
const (
	CodeParse    = "PARSE"
	CodeTimeout  = "TIMEOUT"
	CodeTable    = "TABLE"
	CodeCanceled = "CANCELED"
)

// Result is the outcome of one logical form.
type Result struct {
	ExampleID string `json:"example_id"`
	FormIndex int    `json:"form_index"`
	Form      string `json:"form"`

	// Denotation is the formatted execution result.
	Denotation []string `json:"denotation"`

	Correct bool `json:"correct"`

	// ErrorCode is an executor error code or one of the Code constants.
	ErrorCode string `json:"error_code,omitempty"`
	Error     string `json:"error,omitempty"`

	Diagnostics []executor.Diagnostic `json:"diagnostics,omitempty"`
}

// Report summarizes a batch run.
type Report struct {
	RunID      string    `json:"run_id"`
	Suite      string    `json:"suite"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Examples is the number of examples in the suite.
	Examples int `json:"examples"`

	// ExamplesCorrect counts examples with at least one correct form.
	ExamplesCorrect int `json:"examples_correct"`

	// Forms counts executed logical forms; Correct and Errors are subsets.
	Forms   int `json:"forms"`
	Correct int `json:"correct"`
	Errors  int `json:"errors"`

	Results []Result `json:"results"`
}

// Accuracy is the fraction of examples answered by at least one form.
func (r *Report) Accuracy() float64 {
	if r.Examples == 0 {
		return 0
	}
	return float64(r.ExamplesCorrect) / float64(r.Examples)
}

// summarize fills the counters from Results.
func (r *Report) summarize() {
	r.Forms, r.Correct, r.Errors, r.ExamplesCorrect = len(r.Results), 0, 0, 0
	answered := make(map[string]bool)
	for _, res := range r.Results {
		if res.Correct {
			r.Correct++
			answered[res.ExampleID] = true
		}
		if res.ErrorCode != "" {
			r.Errors++
		}
	}
	r.ExamplesCorrect = len(answered)
}
