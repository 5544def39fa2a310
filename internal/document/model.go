package document

import (
	"encoding/json"
	"fmt"
	"slices"
)

// State is the constraint on a document's state type. Clone must return a
// deep copy: handlers mutate the clone freely. GlobalState returns the part
// that is persisted and digested.
type State[S any] interface {
	Clone() S
	GlobalState() any
}

// Definition binds an action kind to its scope and typed input decoder.
type Definition struct {
	Kind   Kind
	Scope  Scope
	decode func([]byte) (Input, error)
}

// Define declares a global kind whose typed input is T. The kind name is
// taken from T's Kind method so it has a single source.
func Define[T Input]() Definition {
	var zero T
	return Definition{
		Kind:  zero.Kind(),
		Scope: ScopeGlobal,
		decode: func(raw []byte) (Input, error) {
			var in T
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, fmt.Errorf("decode %s: %w", zero.Kind(), err)
			}
			return in, nil
		},
	}
}

// Decode turns a validated payload into the kind's typed input.
func (d Definition) Decode(raw []byte) (Input, error) {
	if d.decode == nil {
		return nil, fmt.Errorf("%w: %s has no decoder", ErrUnknownKind, d.Kind)
	}
	return d.decode(raw)
}

// ReduceFunc applies one action to a draft state. It must only return
// ReducerErrors and must not perform I/O.
type ReduceFunc[S any] func(draft *S, a Action) error

// Model describes one document type: its name, initial state, reducer and
// the kinds it accepts.
type Model[S State[S]] struct {
	Type        string
	Initial     func() S
	Reducer     ReduceFunc[S]
	Definitions []Definition
}

// DocumentType implements Descriptor.
func (m *Model[S]) DocumentType() string { return m.Type }

// Kinds implements Descriptor. The result is sorted.
func (m *Model[S]) Kinds() []Kind {
	kinds := make([]Kind, 0, len(m.Definitions))
	for _, d := range m.Definitions {
		kinds = append(kinds, d.Kind)
	}
	slices.Sort(kinds)
	return kinds
}

// Definition implements Descriptor.
func (m *Model[S]) Definition(kind Kind) (Definition, bool) {
	for _, d := range m.Definitions {
		if d.Kind == kind {
			return d, true
		}
	}
	return Definition{}, false
}

// NewDocument implements Descriptor.
func (m *Model[S]) NewDocument(id string) Handle {
	return New(m, id, m.Initial())
}

// Replay implements Descriptor.
func (m *Model[S]) Replay(id string, records []Record) (Handle, error) {
	return Replay(m, id, m.Initial(), records)
}

// Descriptor is the type-erased view of a Model used by hosts that handle
// several document types.
type Descriptor interface {
	DocumentType() string
	Kinds() []Kind
	Definition(kind Kind) (Definition, bool)
	NewDocument(id string) Handle
	Replay(id string, records []Record) (Handle, error)
}

// Handle is the type-erased view of a Document.
type Handle interface {
	ID() string
	DocumentType() string
	Apply(a Action, opts ...ApplyOption) (Record, error)
	History(scope Scope) []Record
	Records() []Record
	Revision(scope Scope) int64
	Digest() (string, error)
	Snapshot() ([]byte, error)
}
