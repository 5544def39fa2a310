package document

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/docreduce/internal/ir"
)

// Factory turns raw or typed input into validated Actions for one
// document type.
type Factory struct {
	docType   string
	defs      map[Kind]Definition
	validator Validator
	clock     Clock
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithClock sets the timestamp source.
func WithClock(c Clock) FactoryOption {
	return func(f *Factory) { f.clock = c }
}

// NewFactory creates a factory for desc's kinds.
func NewFactory(desc Descriptor, v Validator, opts ...FactoryOption) *Factory {
	f := &Factory{
		docType:   desc.DocumentType(),
		defs:      make(map[Kind]Definition),
		validator: v,
		clock:     SystemClock{},
	}
	for _, k := range desc.Kinds() {
		def, _ := desc.Definition(k)
		f.defs[k] = def
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// DocumentType returns the document type this factory builds actions for.
func (f *Factory) DocumentType() string { return f.docType }

// Create validates raw against kind's schema and builds an Action stamped
// with the factory clock. An empty scope means the kind's own scope.
func (f *Factory) Create(kind Kind, raw []byte, scope Scope) (Action, error) {
	return f.build(kind, raw, scope, f.clock.Now())
}

// New builds an Action from a typed input. It runs the same validation as
// Create, so typed and raw paths cannot diverge.
func (f *Factory) New(in Input) (Action, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return Action{}, fmt.Errorf("marshal %s: %w", in.Kind(), err)
	}
	return f.Create(in.Kind(), raw, "")
}

// Restore rebuilds a persisted action with its original timestamp. The
// payload is validated again so a corrupt log cannot inject bad input.
func (f *Factory) Restore(kind Kind, scope Scope, payload []byte, ts time.Time) (Action, error) {
	return f.build(kind, payload, scope, ts)
}

// MustCreate is like Create but panics on error. Use in tests and fixtures.
func (f *Factory) MustCreate(kind Kind, raw []byte) Action {
	a, err := f.Create(kind, raw, "")
	if err != nil {
		panic(err)
	}
	return a
}

// MustNew is like New but panics on error.
func (f *Factory) MustNew(in Input) Action {
	a, err := f.New(in)
	if err != nil {
		panic(err)
	}
	return a
}

func (f *Factory) build(kind Kind, raw []byte, scope Scope, ts time.Time) (Action, error) {
	def, ok := f.defs[kind]
	if !ok {
		return Action{}, fmt.Errorf("%w: %s/%s", ErrUnknownKind, f.docType, kind)
	}
	if scope == "" {
		scope = def.Scope
	}
	if scope != def.Scope {
		return Action{}, fmt.Errorf("%w: %s is %s, got %s", ErrScopeMismatch, kind, def.Scope, scope)
	}

	payload, err := f.validator.Validate(f.docType, kind, raw)
	if err != nil {
		return Action{}, err
	}

	canonical, err := ir.MarshalCanonical(payload)
	if err != nil {
		return Action{}, fmt.Errorf("canonicalize %s: %w", kind, err)
	}
	in, err := def.Decode(canonical)
	if err != nil {
		return Action{}, err
	}

	stamp := formatTimestamp(ts)
	id, err := ir.ActionID(f.docType, string(kind), string(scope), payload, stamp)
	if err != nil {
		return Action{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		return Action{}, fmt.Errorf("timestamp: %w", err)
	}

	return Action{
		ID:           id,
		DocumentType: f.docType,
		Kind:         kind,
		Scope:        scope,
		Input:        in,
		Payload:      payload,
		Timestamp:    parsed,
		validated:    true,
	}, nil
}
