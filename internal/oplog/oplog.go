// Package oplog defines the persisted form of document operation logs and
// the contract every storage backend implements.
//
// Entries hold the canonical JSON payload rather than decoded inputs; the
// engine re-validates them through a factory when it rehydrates a document.
package oplog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned for an unknown document id.
	ErrNotFound = errors.New("document not found")

	// ErrExists is returned when creating a document id twice.
	ErrExists = errors.New("document already exists")

	// ErrConflict is returned when an appended index is not the next one
	// in its scope.
	ErrConflict = errors.New("index conflict")
)

// DocumentInfo identifies a stored document.
type DocumentInfo struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// Entry is one persisted history record.
type Entry struct {
	DocumentID string `json:"document_id"`
	Scope      string `json:"scope"`
	Index      int64  `json:"index"`
	Skip       int64  `json:"skip"`
	ActionID   string `json:"action_id"`
	Kind       string `json:"kind"`
	Payload    []byte `json:"payload"`
	Timestamp  string `json:"timestamp"`
}

// Log is an append-only store of document histories.
//
// Implementations must return entries ordered by scope, then index, and
// must reject an append whose index is not exactly the scope's next index.
type Log interface {
	CreateDocument(ctx context.Context, info DocumentInfo) error
	GetDocument(ctx context.Context, id string) (DocumentInfo, error)
	ListDocuments(ctx context.Context) ([]DocumentInfo, error)
	AppendEntry(ctx context.Context, e Entry) error
	ListEntries(ctx context.Context, documentID string) ([]Entry, error)
	Close() error
}
