package harness

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/docreduce/internal/ir"
)

func TestScenarioFilesPass(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := LoadScenario(path)
			require.NoError(t, err)

			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Len(t, result.Trace, len(s.Steps))
		})
	}
}

func TestWorkBreakdownGolden(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/workbreakdown_steps.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestRunIsDeterministic(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/subscription_lifecycle.yaml")
	require.NoError(t, err)

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, first.Trace, second.Trace)
}

func TestRunReportsMismatches(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: mismatch
type: offering
steps:
  - kind: addService
    input: { id: a, title: A }
    expect_error: DuplicateServiceIdError
  - kind: deleteService
    input: { id: zzz }
assertions:
  - path: services.0.title
    equals: B
  - type: history
    kinds: []
`))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "expected DuplicateServiceIdError, got applied")
	assert.Contains(t, result.Errors[1], "rejected with ServiceNotFoundError")
	assert.Contains(t, result.Errors[2], `expected "B", got "A"`)
	assert.Contains(t, result.Errors[3], "history")
}

func TestRunUnknownType(t *testing.T) {
	s := &Scenario{Name: "x", Type: "invoice", Steps: []Step{{Kind: "k"}}}
	_, err := New().Run(context.Background(), s)
	require.Error(t, err)
}

func TestParseScenarioValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing name", "type: offering\nsteps: [{kind: addService}]", "name is required"},
		{"missing type", "name: x\nsteps: [{kind: addService}]", "type is required"},
		{"no steps", "name: x\ntype: offering", "steps list is required"},
		{"step without kind", "name: x\ntype: offering\nsteps: [{input: {}}]", "steps[0]: kind is required"},
		{"unknown field", "name: x\ntype: offering\nstep: []", "field step not found"},
		{"state without equals", "name: x\ntype: offering\nsteps: [{kind: a}]\nassertions: [{path: title}]", "equals is required"},
		{"count without count", "name: x\ntype: offering\nsteps: [{kind: a}]\nassertions: [{type: count, path: tiers}]", "count is required"},
		{"unknown assertion", "name: x\ntype: offering\nsteps: [{kind: a}]\nassertions: [{type: vibes}]", "unknown assertion type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLookup(t *testing.T) {
	state := ir.Object{
		"title": ir.String("T"),
		"steps": ir.Array{
			ir.Object{"id": ir.String("s1"), "owner": ir.Null{}},
			ir.Object{"id": ir.String("s2"), "tags": ir.Array{ir.String("x")}},
		},
	}

	tests := []struct {
		path string
		want ir.Value
		err  string
	}{
		{path: "title", want: ir.String("T")},
		{path: "steps.1.id", want: ir.String("s2")},
		{path: "steps[id=s1].owner", want: ir.Null{}},
		{path: "steps[id=s2].tags.0", want: ir.String("x")},
		{path: "steps.5", err: "index out of range"},
		{path: "steps.first", err: "array index expected"},
		{path: "steps[id=s9]", err: "no element with id=s9"},
		{path: "title.length", err: "not an object"},
		{path: "missing", err: "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Lookup(state, tt.path)
			if tt.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
