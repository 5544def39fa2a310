package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/ir"
	"github.com/roach88/docreduce/internal/oplog"
)

// Engine creates, loads and mutates documents backed by an operation log.
//
// Thread-safety model:
//   - All methods are safe from any goroutine
//   - Calls on the same document are serialized
//   - Calls on different documents run concurrently
type Engine struct {
	registry   *document.Registry
	log        oplog.Log
	clock      document.Clock
	ids        IDGenerator
	logger     *slog.Logger
	metrics    *Metrics
	maxRecords int64

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	cache map[string]document.Handle
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator sets the document id source. Default: UUIDv7Generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// WithClock sets the clock used for document creation times. Action
// timestamps come from the registry's factories.
func WithClock(c document.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics sets the metrics collectors. Default: unregistered collectors.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithMaxRecords sets the history quota per document.
//
// Default: DefaultMaxRecords. Zero disables the quota.
func WithMaxRecords(n int64) Option {
	return func(e *Engine) { e.maxRecords = n }
}

// New creates an Engine over the registry's document types and log.
func New(registry *document.Registry, log oplog.Log, opts ...Option) *Engine {
	e := &Engine{
		registry:   registry,
		log:        log,
		clock:      document.SystemClock{},
		ids:        UUIDv7Generator{},
		logger:     slog.Default(),
		maxRecords: DefaultMaxRecords,
		locks:      make(map[string]*sync.Mutex),
		cache:      make(map[string]document.Handle),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = NewMetrics(nil)
	}
	return e
}

// Registry returns the engine's model registry.
func (e *Engine) Registry() *document.Registry { return e.registry }

// lock acquires the per-document mutex and returns its unlock function.
func (e *Engine) lock(id string) func() {
	e.mu.Lock()
	l, ok := e.locks[id]
	if !ok {
		l = &sync.Mutex{}
		e.locks[id] = l
	}
	e.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (e *Engine) cached(id string) (document.Handle, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	h, ok := e.cache[id]
	return h, ok
}

func (e *Engine) remember(h document.Handle) {
	e.mu.Lock()
	e.cache[h.ID()] = h
	e.mu.Unlock()
}

func (e *Engine) evict(id string) {
	e.mu.Lock()
	delete(e.cache, id)
	e.mu.Unlock()
}

// Create registers a new empty document of docType and returns its id.
func (e *Engine) Create(ctx context.Context, docType string) (string, error) {
	desc, ok := e.registry.Model(docType)
	if !ok {
		return "", &HostError{Code: ErrCodeUnknownType, Message: fmt.Sprintf("no model for %q", docType)}
	}

	id := e.ids.NewID()
	info := oplog.DocumentInfo{
		ID:        id,
		Type:      docType,
		CreatedAt: e.clock.Now().UTC().Format(timestampLayout),
	}
	if err := e.log.CreateDocument(ctx, info); err != nil {
		return "", fmt.Errorf("create %s document: %w", docType, err)
	}

	unlock := e.lock(id)
	e.remember(desc.NewDocument(id))
	unlock()

	e.logger.Info("document created", "document_id", id, "type", docType)
	return id, nil
}

// Submit validates raw as input for kind, applies it to the document and
// persists the resulting record.
//
// Rejections (schema failures, reducer errors, quota) leave both the
// document and the log unchanged.
func (e *Engine) Submit(ctx context.Context, docID string, kind document.Kind, raw []byte) (document.Record, error) {
	unlock := e.lock(docID)
	defer unlock()

	h, err := e.load(ctx, docID)
	if err != nil {
		return document.Record{}, err
	}
	docType := h.DocumentType()

	rec, err := e.apply(h, kind, raw)
	if err != nil {
		code := RejectionCode(err)
		e.metrics.observeRejected(docType, kind, code)
		e.logger.Warn("action rejected",
			"document_id", docID,
			"kind", kind,
			"code", code,
			"error", err,
		)
		return document.Record{}, err
	}

	if err := e.persist(ctx, docID, rec); err != nil {
		// The in-memory document is now ahead of the log.
		e.evict(docID)
		return document.Record{}, &HostError{
			Code:       ErrCodePersist,
			Message:    err.Error(),
			DocumentID: docID,
		}
	}

	e.metrics.observeApplied(docType, kind)
	e.logger.Info("action applied",
		"document_id", docID,
		"kind", kind,
		"scope", rec.Scope,
		"index", rec.Index,
		"action_id", rec.ID,
	)
	return rec, nil
}

func (e *Engine) apply(h document.Handle, kind document.Kind, raw []byte) (document.Record, error) {
	if err := checkQuota(h, e.maxRecords); err != nil {
		return document.Record{}, err
	}
	f, err := e.registry.Factory(h.DocumentType())
	if err != nil {
		return document.Record{}, err
	}
	a, err := f.Create(kind, raw, "")
	if err != nil {
		return document.Record{}, err
	}
	return h.Apply(a)
}

func (e *Engine) persist(ctx context.Context, docID string, rec document.Record) error {
	payload, err := ir.MarshalCanonical(rec.Payload)
	if err != nil {
		return fmt.Errorf("canonicalize payload: %w", err)
	}
	return e.log.AppendEntry(ctx, oplog.Entry{
		DocumentID: docID,
		Scope:      string(rec.Scope),
		Index:      rec.Index,
		Skip:       rec.Skip,
		ActionID:   rec.ID,
		Kind:       string(rec.Kind),
		Payload:    payload,
		Timestamp:  rec.TimestampString(),
	})
}

// Snapshot is a point-in-time view of a document.
type Snapshot struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	CreatedAt      string `json:"created_at"`
	GlobalRevision int64  `json:"global_revision"`
	LocalRevision  int64  `json:"local_revision"`
	Digest         string `json:"digest"`

	// State is the canonical JSON of the global state.
	State []byte `json:"-"`
}

// Inspect returns a snapshot of the document, loading it if needed.
func (e *Engine) Inspect(ctx context.Context, docID string) (Snapshot, error) {
	unlock := e.lock(docID)
	defer unlock()

	info, err := e.log.GetDocument(ctx, docID)
	if err != nil {
		return Snapshot{}, err
	}
	h, err := e.load(ctx, docID)
	if err != nil {
		return Snapshot{}, err
	}
	state, err := h.Snapshot()
	if err != nil {
		return Snapshot{}, err
	}
	digest, err := h.Digest()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ID:             docID,
		Type:           info.Type,
		CreatedAt:      info.CreatedAt,
		GlobalRevision: h.Revision(document.ScopeGlobal),
		LocalRevision:  h.Revision(document.ScopeLocal),
		Digest:         digest,
		State:          state,
	}, nil
}

// History returns the document's records in replay order.
func (e *Engine) History(ctx context.Context, docID string) ([]document.Record, error) {
	unlock := e.lock(docID)
	defer unlock()

	h, err := e.load(ctx, docID)
	if err != nil {
		return nil, err
	}
	return h.Records(), nil
}

// Documents lists stored documents ordered by id.
func (e *Engine) Documents(ctx context.Context) ([]oplog.DocumentInfo, error) {
	return e.log.ListDocuments(ctx)
}

// Close releases the operation log.
func (e *Engine) Close() error {
	if e.log == nil {
		return nil
	}
	return e.log.Close()
}

// IsNotFound reports whether err means the document does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, oplog.ErrNotFound)
}
