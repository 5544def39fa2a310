package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/docreduce/internal/oplog"
)

// CreateDocument inserts a document row. A second insert of the same id
// returns oplog.ErrExists.
func (s *Store) CreateDocument(ctx context.Context, info oplog.DocumentInfo) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, type, created_at)
		VALUES (?, ?, ?)
	`, info.ID, info.Type, info.CreatedAt)
	if isConstraint(err) {
		return fmt.Errorf("create document %s: %w", info.ID, oplog.ErrExists)
	}
	if err != nil {
		return fmt.Errorf("create document %s: %w", info.ID, err)
	}
	return nil
}

// GetDocument returns oplog.ErrNotFound for an unknown id.
func (s *Store) GetDocument(ctx context.Context, id string) (oplog.DocumentInfo, error) {
	var info oplog.DocumentInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT id, type, created_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&info.ID, &info.Type, &info.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return oplog.DocumentInfo{}, fmt.Errorf("get document %s: %w", id, oplog.ErrNotFound)
	}
	if err != nil {
		return oplog.DocumentInfo{}, fmt.Errorf("get document %s: %w", id, err)
	}
	return info, nil
}

// ListDocuments returns every document ordered by id.
// Returns an empty slice (not nil) when there are none.
func (s *Store) ListDocuments(ctx context.Context) ([]oplog.DocumentInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, created_at
		FROM documents
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	docs := []oplog.DocumentInfo{}
	for rows.Next() {
		var info oplog.DocumentInfo
		if err := rows.Scan(&info.ID, &info.Type, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func isConstraint(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.Code == sqlite3.ErrConstraint
}
