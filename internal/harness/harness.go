package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/engine"
	"github.com/roach88/docreduce/internal/ir"
	"github.com/roach88/docreduce/internal/journal"
	"github.com/roach88/docreduce/internal/models"
	"github.com/roach88/docreduce/internal/testutil"
)

// DocumentID is the id every scenario document receives.
const DocumentID = "scenario-doc"

// Harness executes scenarios.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger routes engine logs to l. Default: discarded.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with default options.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(context.Background(), scenario)
}

// Run executes the scenario in isolation.
//
// Step and assertion mismatches are reported in the Result. The error is
// reserved for setup failures (unknown type, storage errors).
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	registry, err := models.NewRegistry(testutil.NewDefaultSteppingClock())
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	log, err := journal.OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	eng := engine.New(registry, log,
		engine.WithIDGenerator(engine.NewFixedGenerator(DocumentID)),
		engine.WithClock(testutil.NewFixedClock(testutil.Epoch)),
		engine.WithLogger(h.logger),
		engine.WithMaxRecords(0),
	)
	defer eng.Close()

	id, err := eng.Create(ctx, scenario.Type)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		ev, err := h.runStep(ctx, eng, id, i, step)
		if err != nil {
			return nil, err
		}
		result.Trace = append(result.Trace, ev)

		switch {
		case step.ExpectError == "" && ev.Outcome != OutcomeApplied:
			result.AddError(fmt.Sprintf("steps[%d] %s: expected to apply, rejected with %s", i, step.Kind, ev.Outcome))
		case step.ExpectError != "" && ev.Outcome != step.ExpectError:
			result.AddError(fmt.Sprintf("steps[%d] %s: expected %s, got %s", i, step.Kind, step.ExpectError, ev.Outcome))
		}
	}

	snap, err := eng.Inspect(ctx, id)
	if err != nil {
		return nil, err
	}
	result.Digest = snap.Digest
	result.State, err = ir.Parse(snap.State)
	if err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	verify, err := eng.Verify(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("verify replay: %w", err)
	}
	if !verify.Match {
		result.AddError(fmt.Sprintf("replay diverged: live %s, replayed %s", verify.LiveDigest, verify.FirstDigest))
	}

	for i, a := range scenario.Assertions {
		if err := checkAssertion(result, a); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return result, nil
}

// runStep submits one step. Rejections become the event outcome; only
// storage and context failures are returned as errors.
func (h *Harness) runStep(ctx context.Context, eng *engine.Engine, id string, i int, step Step) (TraceEvent, error) {
	ev := TraceEvent{Step: i, Kind: step.Kind}

	raw, err := encodeInput(step.Input)
	if err != nil {
		ev.Outcome = "INVALID_INPUT"
		return ev, nil
	}

	rec, err := eng.Submit(ctx, id, document.Kind(step.Kind), raw)
	if err != nil {
		code := engine.RejectionCode(err)
		if code == string(engine.ErrCodePersist) || ctx.Err() != nil {
			return ev, err
		}
		ev.Outcome = code
		return ev, nil
	}

	ev.Outcome = OutcomeApplied
	ev.Scope = string(rec.Scope)
	ev.Index = rec.Index
	return ev, nil
}

// encodeInput converts YAML-decoded input to canonical JSON.
func encodeInput(input map[string]any) ([]byte, error) {
	if input == nil {
		return []byte("{}"), nil
	}
	v, err := ir.FromAny(input)
	if err != nil {
		return nil, err
	}
	return ir.MarshalCanonical(v)
}
