// Package journal provides a BadgerDB-backed operation log. It implements
// oplog.Log for deployments that want an embedded key-value store instead
// of SQLite.
//
// Key layout:
//
//	doc/<id>                        DocumentInfo (JSON)
//	head/<id>/<scope>               next index of the scope (big-endian uint64)
//	rec/<id>/<scope>/<%020d index>  Entry (JSON)
//
// Zero-padded indices make key order equal index order, and "global" sorts
// before "local", so a single prefix scan yields history in replay order.
package journal

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/roach88/docreduce/internal/oplog"
)

// ErrInvalidID is returned for document ids or scopes that would break the
// key layout.
var ErrInvalidID = errors.New("invalid journal key component")

// Config holds configuration for a journal.
type Config struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM. Used by tests.
	InMemory bool

	// SyncWrites fsyncs each commit.
	SyncWrites bool

	// Logger receives BadgerDB's internal logs. Nil disables them.
	Logger *slog.Logger
}

// Journal is a BadgerDB operation log.
type Journal struct {
	db *badger.DB

	// appendMu serializes appends so the head check and write are atomic
	// with respect to each other.
	appendMu sync.Mutex
}

// Open opens or creates a journal.
func Open(cfg Config) (*Journal, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("journal: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("journal: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("journal: open badger: %w", err)
	}
	return &Journal{db: db}, nil
}

// OpenInMemory opens a journal that is discarded on Close.
func OpenInMemory() (*Journal, error) {
	return Open(Config{InMemory: true})
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

func docKey(id string) []byte { return []byte("doc/" + id) }

func headKey(id, scope string) []byte { return []byte("head/" + id + "/" + scope) }

func recPrefix(id string) []byte { return []byte("rec/" + id + "/") }

func recKey(id, scope string, index int64) []byte {
	return []byte(fmt.Sprintf("rec/%s/%s/%020d", id, scope, index))
}

func checkComponent(what, s string) error {
	if s == "" || strings.Contains(s, "/") {
		return fmt.Errorf("%w: %s %q", ErrInvalidID, what, s)
	}
	return nil
}

// CreateDocument stores a document header. Returns oplog.ErrExists if the id
// is taken.
func (j *Journal) CreateDocument(ctx context.Context, info oplog.DocumentInfo) error {
	if err := checkComponent("document id", info.ID); err != nil {
		return err
	}
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("journal: encode document: %w", err)
	}
	return j.db.Update(func(txn *badger.Txn) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := txn.Get(docKey(info.ID))
		switch {
		case err == nil:
			return fmt.Errorf("create document %s: %w", info.ID, oplog.ErrExists)
		case !errors.Is(err, badger.ErrKeyNotFound):
			return fmt.Errorf("create document %s: %w", info.ID, err)
		}
		return txn.Set(docKey(info.ID), data)
	})
}

// GetDocument returns oplog.ErrNotFound for an unknown id.
func (j *Journal) GetDocument(ctx context.Context, id string) (oplog.DocumentInfo, error) {
	var info oplog.DocumentInfo
	err := j.db.View(func(txn *badger.Txn) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		info, err = getDocument(txn, id)
		return err
	})
	return info, err
}

func getDocument(txn *badger.Txn, id string) (oplog.DocumentInfo, error) {
	var info oplog.DocumentInfo
	item, err := txn.Get(docKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return info, fmt.Errorf("get document %s: %w", id, oplog.ErrNotFound)
	}
	if err != nil {
		return info, fmt.Errorf("get document %s: %w", id, err)
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &info)
	})
	if err != nil {
		return info, fmt.Errorf("decode document %s: %w", id, err)
	}
	return info, nil
}

// ListDocuments returns every document ordered by id.
func (j *Journal) ListDocuments(ctx context.Context) ([]oplog.DocumentInfo, error) {
	docs := []oplog.DocumentInfo{}
	err := j.db.View(func(txn *badger.Txn) error {
		prefix := []byte("doc/")
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: true, PrefetchSize: 64, Prefix: prefix})
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var info oplog.DocumentInfo
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &info)
			}); err != nil {
				return fmt.Errorf("decode document %s: %w", it.Item().Key(), err)
			}
			docs = append(docs, info)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// AppendEntry writes one record. The document must exist and e.Index must be
// the scope's next index.
func (j *Journal) AppendEntry(ctx context.Context, e oplog.Entry) error {
	if err := checkComponent("document id", e.DocumentID); err != nil {
		return err
	}
	if err := checkComponent("scope", e.Scope); err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("journal: encode entry: %w", err)
	}

	j.appendMu.Lock()
	defer j.appendMu.Unlock()

	return j.db.Update(func(txn *badger.Txn) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := getDocument(txn, e.DocumentID); err != nil {
			return fmt.Errorf("append entry: %w", err)
		}

		next, err := readHead(txn, e.DocumentID, e.Scope)
		if err != nil {
			return err
		}
		if e.Index != next {
			return fmt.Errorf("append entry: %s/%s: %w: expected %d, got %d",
				e.DocumentID, e.Scope, oplog.ErrConflict, next, e.Index)
		}

		if err := txn.Set(recKey(e.DocumentID, e.Scope, e.Index), data); err != nil {
			return fmt.Errorf("append entry: %w", err)
		}
		var head [8]byte
		binary.BigEndian.PutUint64(head[:], uint64(next+1))
		return txn.Set(headKey(e.DocumentID, e.Scope), head[:])
	})
}

func readHead(txn *badger.Txn, id, scope string) (int64, error) {
	item, err := txn.Get(headKey(id, scope))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read head: %w", err)
	}
	var next int64
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("corrupt head for %s/%s", id, scope)
		}
		next = int64(binary.BigEndian.Uint64(val))
		return nil
	})
	return next, err
}

// ListEntries returns a document's records ordered by scope, then index.
func (j *Journal) ListEntries(ctx context.Context, documentID string) ([]oplog.Entry, error) {
	if err := checkComponent("document id", documentID); err != nil {
		return nil, err
	}
	entries := []oplog.Entry{}
	err := j.db.View(func(txn *badger.Txn) error {
		prefix := recPrefix(documentID)
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: true, PrefetchSize: 100, Prefix: prefix})
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var e oplog.Entry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			}); err != nil {
				return fmt.Errorf("decode entry %s: %w", it.Item().Key(), err)
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// badgerLogger adapts slog.Logger to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
