// Package engine hosts document models: it creates documents, turns raw
// input into validated actions, applies them, and persists the resulting
// history records to an operation log.
//
// ARCHITECTURE:
//
// Per-Document Serialization:
// Apply on one document is serialized by a per-document mutex. Different
// documents proceed independently. Inside the lock the engine:
//  1. Loads the document (cache hit, or replay from the log)
//  2. Builds the action with the type's factory (schema validation)
//  3. Applies it to the document (reducer, atomic on error)
//  4. Appends the record to the log with the canonical JSON payload
//
// If step 4 fails the cached document is evicted, so the next call
// rehydrates from what the log actually holds.
//
// Rehydration:
// Stored payloads go back through Factory.Restore with their original
// timestamps. Restore revalidates them and recomputes the action id, which
// must equal the stored id. Records are then replayed in (scope, index)
// order.
//
// Determinism:
// Verify replays the log twice and compares state digests with each other
// and with the live document. Reducers never read clocks or generate ids,
// so any difference means the log or the model changed.
package engine
