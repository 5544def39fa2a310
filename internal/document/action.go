package document

import (
	"time"

	"github.com/roach88/docreduce/internal/ir"
)

// Scope partitions document state.
type Scope string

const (
	// ScopeGlobal is shared, persisted state.
	ScopeGlobal Scope = "global"
	// ScopeLocal is ephemeral state that is never written to the log.
	ScopeLocal Scope = "local"
)

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	return s == ScopeGlobal || s == ScopeLocal
}

// Kind is the tag identifying an action type within a document type.
type Kind string

// Input is a typed, decoded action payload. Each document type narrows it
// to a sealed interface so its reducer can switch over a closed set.
type Input interface {
	Kind() Kind
}

// Action is a validated description of one intended state change.
// Actions are values; only a Factory produces ones that Apply accepts.
type Action struct {
	ID           string
	DocumentType string
	Kind         Kind
	Scope        Scope
	Input        Input
	Payload      ir.Object
	Timestamp    time.Time

	validated bool
}

// Validated reports whether the action was built by a Factory.
func (a Action) Validated() bool {
	return a.validated
}

// TimestampString is the canonical RFC 3339 form stored in the log.
func (a Action) TimestampString() string {
	return formatTimestamp(a.Timestamp)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Record is an action plus its position in a scope's history.
type Record struct {
	Index  int64
	Skip   int64
	Action Action
}
