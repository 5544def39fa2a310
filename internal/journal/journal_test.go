package journal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/docreduce/internal/oplog"
	"github.com/roach88/docreduce/internal/oplog/oplogtest"
)

func openMem(t *testing.T) *Journal {
	t.Helper()
	j, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_Conformance(t *testing.T) {
	oplogtest.Run(t, func(t *testing.T) oplog.Log {
		return openMem(t)
	})
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(Config{})
	require.Error(t, err)
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	j, err := Open(Config{Path: dir, SyncWrites: true})
	require.NoError(t, err)
	require.NoError(t, j.CreateDocument(ctx, oplog.DocumentInfo{ID: "doc-1", Type: "offering", CreatedAt: "t"}))
	require.NoError(t, j.AppendEntry(ctx, oplog.Entry{
		DocumentID: "doc-1", Scope: "global", Index: 0,
		ActionID: "a", Kind: "addService", Payload: []byte(`{"id":"s1","title":"Audit"}`), Timestamp: "t",
	}))
	require.NoError(t, j.Close())

	j, err = Open(Config{Path: dir})
	require.NoError(t, err)
	defer j.Close()

	entries, err := j.ListEntries(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `{"id":"s1","title":"Audit"}`, string(entries[0].Payload))

	// The head survives the reopen.
	err = j.AppendEntry(ctx, oplog.Entry{DocumentID: "doc-1", Scope: "global", Index: 0, Payload: []byte(`{}`)})
	require.ErrorIs(t, err, oplog.ErrConflict)
}

func TestInvalidIDs(t *testing.T) {
	j := openMem(t)
	ctx := context.Background()

	require.ErrorIs(t, j.CreateDocument(ctx, oplog.DocumentInfo{ID: "a/b", Type: "x"}), ErrInvalidID)
	require.ErrorIs(t, j.CreateDocument(ctx, oplog.DocumentInfo{ID: "", Type: "x"}), ErrInvalidID)

	require.NoError(t, j.CreateDocument(ctx, oplog.DocumentInfo{ID: "d", Type: "x"}))
	err := j.AppendEntry(ctx, oplog.Entry{DocumentID: "d", Scope: "glo/bal", Payload: []byte(`{}`)})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestRecKeyOrdersByIndex(t *testing.T) {
	assert.Less(t, string(recKey("d", "global", 9)), string(recKey("d", "global", 10)))
	assert.Less(t, string(recKey("d", "global", 999)), string(recKey("d", "local", 0)))
}
