package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/docreduce/internal/oplog"
)

// AppendEntry writes one history record.
//
// The check and insert run in one transaction: the document must exist
// (oplog.ErrNotFound) and e.Index must be exactly the next index of its
// scope (oplog.ErrConflict).
func (s *Store) AppendEntry(ctx context.Context, e oplog.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append entry: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var found int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM documents WHERE id = ?`, e.DocumentID).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("append entry: %s: %w", e.DocumentID, oplog.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("append entry: lookup document: %w", err)
	}

	var next int64
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(idx) + 1, 0)
		FROM operations
		WHERE document_id = ? AND scope = ?
	`, e.DocumentID, e.Scope).Scan(&next)
	if err != nil {
		return fmt.Errorf("append entry: next index: %w", err)
	}
	if e.Index != next {
		return fmt.Errorf("append entry: %s/%s: %w: expected %d, got %d",
			e.DocumentID, e.Scope, oplog.ErrConflict, next, e.Index)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO operations
		(document_id, scope, idx, skip, action_id, kind, payload, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.DocumentID,
		e.Scope,
		e.Index,
		e.Skip,
		e.ActionID,
		e.Kind,
		string(e.Payload),
		e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append entry: insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append entry: commit: %w", err)
	}
	return nil
}

// ListEntries returns a document's history ordered by scope, then index.
// Returns an empty slice (not nil) if the document has no records.
func (s *Store) ListEntries(ctx context.Context, documentID string) ([]oplog.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT document_id, scope, idx, skip, action_id, kind, payload, timestamp
		FROM operations
		WHERE document_id = ?
		ORDER BY scope ASC, idx ASC
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("query operations: %w", err)
	}
	defer rows.Close()

	entries := []oplog.Entry{}
	for rows.Next() {
		var (
			e       oplog.Entry
			payload string
		)
		if err := rows.Scan(&e.DocumentID, &e.Scope, &e.Index, &e.Skip,
			&e.ActionID, &e.Kind, &payload, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		e.Payload = []byte(payload)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return entries, nil
}
