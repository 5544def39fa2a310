// Package oplogtest is a conformance suite for oplog.Log implementations.
package oplogtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/docreduce/internal/oplog"
)

// Run exercises open against the oplog.Log contract. open must return a
// fresh, empty log for each call.
func Run(t *testing.T, open func(t *testing.T) oplog.Log) {
	t.Run("create and get", func(t *testing.T) {
		l := open(t)
		ctx := context.Background()
		info := oplog.DocumentInfo{ID: "d1", Type: "agreement", CreatedAt: "2025-01-01T00:00:00Z"}
		require.NoError(t, l.CreateDocument(ctx, info))

		got, err := l.GetDocument(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, info, got)

		require.ErrorIs(t, l.CreateDocument(ctx, info), oplog.ErrExists)
		_, err = l.GetDocument(ctx, "missing")
		require.ErrorIs(t, err, oplog.ErrNotFound)
	})

	t.Run("list documents sorted by id", func(t *testing.T) {
		l := open(t)
		ctx := context.Background()
		for _, id := range []string{"b", "a", "c"} {
			require.NoError(t, l.CreateDocument(ctx, oplog.DocumentInfo{ID: id, Type: "offering", CreatedAt: "t"}))
		}
		docs, err := l.ListDocuments(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "a", docs[0].ID)
		assert.Equal(t, "c", docs[2].ID)
	})

	t.Run("append and list in order", func(t *testing.T) {
		l := open(t)
		ctx := context.Background()
		require.NoError(t, l.CreateDocument(ctx, oplog.DocumentInfo{ID: "d1", Type: "agreement", CreatedAt: "t"}))

		for i := range 12 {
			require.NoError(t, l.AppendEntry(ctx, entry("d1", "global", int64(i))))
		}
		require.NoError(t, l.AppendEntry(ctx, entry("d1", "local", 0)))

		entries, err := l.ListEntries(ctx, "d1")
		require.NoError(t, err)
		require.Len(t, entries, 13)
		for i := range 12 {
			assert.Equal(t, "global", entries[i].Scope)
			assert.Equal(t, int64(i), entries[i].Index)
		}
		assert.Equal(t, "local", entries[12].Scope)
		assert.Equal(t, entry("d1", "global", 3), entries[3])
	})

	t.Run("append rejects gaps and repeats", func(t *testing.T) {
		l := open(t)
		ctx := context.Background()
		require.NoError(t, l.CreateDocument(ctx, oplog.DocumentInfo{ID: "d1", Type: "agreement", CreatedAt: "t"}))

		require.ErrorIs(t, l.AppendEntry(ctx, entry("d1", "global", 1)), oplog.ErrConflict)
		require.NoError(t, l.AppendEntry(ctx, entry("d1", "global", 0)))
		require.ErrorIs(t, l.AppendEntry(ctx, entry("d1", "global", 0)), oplog.ErrConflict)

		entries, err := l.ListEntries(ctx, "d1")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("append to unknown document", func(t *testing.T) {
		l := open(t)
		err := l.AppendEntry(context.Background(), entry("ghost", "global", 0))
		require.ErrorIs(t, err, oplog.ErrNotFound)
	})

	t.Run("entries are per document", func(t *testing.T) {
		l := open(t)
		ctx := context.Background()
		for _, id := range []string{"d1", "d10"} {
			require.NoError(t, l.CreateDocument(ctx, oplog.DocumentInfo{ID: id, Type: "offering", CreatedAt: "t"}))
			require.NoError(t, l.AppendEntry(ctx, entry(id, "global", 0)))
		}
		entries, err := l.ListEntries(ctx, "d1")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "d1", entries[0].DocumentID)

		empty, err := l.ListEntries(ctx, "unknown")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func entry(doc, scope string, idx int64) oplog.Entry {
	return oplog.Entry{
		DocumentID: doc,
		Scope:      scope,
		Index:      idx,
		ActionID:   fmt.Sprintf("%s-%s-%d", doc, scope, idx),
		Kind:       "setAgreementTitle",
		Payload:    []byte(fmt.Sprintf(`{"title":"v%d"}`, idx)),
		Timestamp:  "2025-01-01T00:00:00Z",
	}
}
