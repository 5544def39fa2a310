package harness

import "github.com/roach88/docreduce/internal/ir"

// Outcome of a step that applied.
const OutcomeApplied = "applied"

// TraceEvent records one submitted step.
type TraceEvent struct {
	Step int    `json:"step"`
	Kind string `json:"kind"`

	// Outcome is OutcomeApplied or the rejection code.
	Outcome string `json:"outcome"`

	// Scope and Index are set for applied steps.
	Scope string `json:"scope,omitempty"`
	Index int64  `json:"index"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every step and assertion matched and replay
	// reproduced the live state.
	Pass bool `json:"pass"`

	// Trace has one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// State is the final global state.
	State ir.Value `json:"state"`

	// Digest is the final state digest.
	Digest string `json:"digest"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// appliedKinds returns the kinds of applied steps in order.
func (r *Result) appliedKinds() []string {
	kinds := []string{}
	for _, ev := range r.Trace {
		if ev.Outcome == OutcomeApplied {
			kinds = append(kinds, ev.Kind)
		}
	}
	return kinds
}
