package document

import (
	"fmt"
	"slices"

	"github.com/roach88/docreduce/internal/ir"
)

// Document is one instance of a document type: its current state and the
// ordered history of actions that produced it. It is not safe for
// concurrent use.
type Document[S State[S]] struct {
	id       string
	model    *Model[S]
	initial  S
	state    S
	history  map[Scope][]Record
	revision map[Scope]int64
}

// New creates an empty document holding initial.
func New[S State[S]](m *Model[S], id string, initial S) *Document[S] {
	return &Document[S]{
		id:       id,
		model:    m,
		initial:  initial.Clone(),
		state:    initial.Clone(),
		history:  make(map[Scope][]Record),
		revision: make(map[Scope]int64),
	}
}

// ApplyOption adjusts how a record is appended.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	skip int64
}

// WithSkip stores a skip count on the appended record. The count is carried
// verbatim; it does not change which actions are reduced.
func WithSkip(n int64) ApplyOption {
	return func(c *applyConfig) { c.skip = n }
}

// ID returns the document id.
func (d *Document[S]) ID() string { return d.id }

// DocumentType returns the model's type name.
func (d *Document[S]) DocumentType() string { return d.model.Type }

// State returns a copy of the current state.
func (d *Document[S]) State() S { return d.state.Clone() }

// Initial returns a copy of the initial state.
func (d *Document[S]) Initial() S { return d.initial.Clone() }

// Apply reduces a into the document. On success the new record is
// appended to a's scope with the next index and the scope's revision
// increases by one. On failure nothing changes and no index is consumed.
func (d *Document[S]) Apply(a Action, opts ...ApplyOption) (Record, error) {
	if !a.validated {
		return Record{}, ErrActionNotValidated
	}
	if a.DocumentType != d.model.Type {
		return Record{}, fmt.Errorf("%w: %s into %s", ErrModelMismatch, a.DocumentType, d.model.Type)
	}

	var cfg applyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	next, err := Reduce(d.model, d.state, a)
	if err != nil {
		return Record{}, err
	}

	rec := Record{Index: d.nextIndex(a.Scope), Skip: cfg.skip, Action: a}
	d.state = next
	d.history[a.Scope] = append(d.history[a.Scope], rec)
	d.revision[a.Scope]++
	return rec, nil
}

func (d *Document[S]) nextIndex(scope Scope) int64 {
	h := d.history[scope]
	if len(h) == 0 {
		return 0
	}
	return h[len(h)-1].Index + 1
}

// History returns a copy of the records in scope, in index order.
func (d *Document[S]) History(scope Scope) []Record {
	return slices.Clone(d.history[scope])
}

// Records returns every record, global scope first, each in index order.
func (d *Document[S]) Records() []Record {
	out := slices.Clone(d.history[ScopeGlobal])
	return append(out, d.history[ScopeLocal]...)
}

// Revision returns the number of records applied in scope.
func (d *Document[S]) Revision(scope Scope) int64 {
	return d.revision[scope]
}

// Snapshot returns the canonical JSON of the global state.
func (d *Document[S]) Snapshot() ([]byte, error) {
	return ir.MarshalCanonical(d.state.GlobalState())
}

// Digest returns the domain-separated SHA-256 of the global state's
// canonical JSON. Local state never contributes.
func (d *Document[S]) Digest() (string, error) {
	v, err := ir.FromAny(d.state.GlobalState())
	if err != nil {
		return "", fmt.Errorf("digest %s: %w", d.id, err)
	}
	return ir.StateDigest(v)
}
