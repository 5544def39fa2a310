package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/oplog"
)

const timestampLayout = time.RFC3339Nano

// load returns the cached document or rehydrates it from the log.
// Caller must hold the document's lock.
func (e *Engine) load(ctx context.Context, docID string) (document.Handle, error) {
	if h, ok := e.cached(docID); ok {
		return h, nil
	}
	h, err := e.rehydrate(ctx, docID)
	if err != nil {
		return nil, err
	}
	e.remember(h)
	return h, nil
}

// Load returns the document, replaying it from the log when it is not
// cached. The handle must not be mutated concurrently with Submit.
func (e *Engine) Load(ctx context.Context, docID string) (document.Handle, error) {
	unlock := e.lock(docID)
	defer unlock()
	return e.load(ctx, docID)
}

// rehydrate rebuilds a document from its stored records without touching
// the cache.
func (e *Engine) rehydrate(ctx context.Context, docID string) (document.Handle, error) {
	info, err := e.log.GetDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	desc, ok := e.registry.Model(info.Type)
	if !ok {
		return nil, &HostError{
			Code:       ErrCodeUnknownType,
			Message:    fmt.Sprintf("no model for %q", info.Type),
			DocumentID: docID,
		}
	}
	f, err := e.registry.Factory(info.Type)
	if err != nil {
		return nil, err
	}

	entries, err := e.log.ListEntries(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("list records of %s: %w", docID, err)
	}

	records := make([]document.Record, 0, len(entries))
	for _, en := range entries {
		rec, err := restore(f, en)
		if err != nil {
			return nil, &HostError{
				Code:       ErrCodeCorruptLog,
				Message:    err.Error(),
				DocumentID: docID,
				Details: map[string]string{
					"scope": en.Scope,
					"index": fmt.Sprint(en.Index),
				},
			}
		}
		records = append(records, rec)
	}

	h, err := desc.Replay(docID, records)
	if err != nil {
		return nil, &HostError{Code: ErrCodeCorruptLog, Message: err.Error(), DocumentID: docID}
	}
	e.metrics.observeReplay(info.Type)
	e.logger.Debug("document rehydrated", "document_id", docID, "records", len(records))
	return h, nil
}

// restore turns a stored entry back into a validated record. The
// recomputed action id must match the stored one.
func restore(f *document.Factory, en oplog.Entry) (document.Record, error) {
	ts, err := time.Parse(timestampLayout, en.Timestamp)
	if err != nil {
		return document.Record{}, fmt.Errorf("timestamp %q: %w", en.Timestamp, err)
	}
	a, err := f.Restore(document.Kind(en.Kind), document.Scope(en.Scope), en.Payload, ts)
	if err != nil {
		return document.Record{}, err
	}
	if a.ID != en.ActionID {
		return document.Record{}, fmt.Errorf("action id mismatch: stored %s, computed %s", en.ActionID, a.ID)
	}
	return document.Record{Index: en.Index, Skip: en.Skip, Action: a}, nil
}

// VerifyResult reports whether a document's log replays deterministically.
type VerifyResult struct {
	DocumentID string `json:"document_id"`
	Type       string `json:"type"`
	Records    int    `json:"records"`

	// FirstDigest and SecondDigest come from two independent replays.
	FirstDigest  string `json:"first_digest"`
	SecondDigest string `json:"second_digest"`

	// LiveDigest is the cached document's digest, empty when the document
	// was not loaded.
	LiveDigest string `json:"live_digest,omitempty"`

	Match bool `json:"match"`
}

// Verify replays the document twice from the log and compares digests with
// each other and with the live document, if one is cached.
func (e *Engine) Verify(ctx context.Context, docID string) (VerifyResult, error) {
	unlock := e.lock(docID)
	defer unlock()

	first, err := e.rehydrate(ctx, docID)
	if err != nil {
		return VerifyResult{}, err
	}
	second, err := e.rehydrate(ctx, docID)
	if err != nil {
		return VerifyResult{}, err
	}

	res := VerifyResult{
		DocumentID: docID,
		Type:       first.DocumentType(),
		Records:    len(first.Records()),
	}
	if res.FirstDigest, err = first.Digest(); err != nil {
		return VerifyResult{}, err
	}
	if res.SecondDigest, err = second.Digest(); err != nil {
		return VerifyResult{}, err
	}
	res.Match = res.FirstDigest == res.SecondDigest

	if live, ok := e.cached(docID); ok {
		if res.LiveDigest, err = live.Digest(); err != nil {
			return VerifyResult{}, err
		}
		res.Match = res.Match && res.LiveDigest == res.FirstDigest
	}

	if !res.Match {
		e.logger.Error("replay mismatch",
			"document_id", docID,
			"first", res.FirstDigest,
			"second", res.SecondDigest,
			"live", res.LiveDigest,
		)
	}
	return res, nil
}

// VerifyAll verifies every stored document in id order.
func (e *Engine) VerifyAll(ctx context.Context) ([]VerifyResult, error) {
	docs, err := e.log.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]VerifyResult, 0, len(docs))
	for _, d := range docs {
		res, err := e.Verify(ctx, d.ID)
		if err != nil {
			return results, fmt.Errorf("verify %s: %w", d.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}
