package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/docreduce/internal/ir"
)

// Snapshot returns the canonical JSON that golden files hold: the
// scenario name, the trace and the final state.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, ev := range result.Trace {
		m := map[string]any{
			"step":    int64(ev.Step),
			"kind":    ev.Kind,
			"outcome": ev.Outcome,
		}
		if ev.Outcome == OutcomeApplied {
			m["scope"] = ev.Scope
			m["index"] = ev.Index
		}
		trace[i] = m
	}
	return ir.MarshalCanonical(map[string]any{
		"scenario_name": scenario.Name,
		"type":          scenario.Type,
		"trace":         trace,
		"state":         result.State,
	})
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	return result, AssertGolden(t, scenario, result)
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
