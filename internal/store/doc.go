// Package store provides SQLite-backed durable storage for document
// operation logs. It implements oplog.Log.
//
// # Layout
//
//   - documents: one row per document (id, type, created_at)
//   - operations: one row per history record, keyed by
//     (document_id, scope, idx)
//
// Payloads are stored as RFC 8785 canonical JSON so a replay reads back
// exactly the bytes that were hashed into the action id.
//
// # Ordering
//
// All history queries use ORDER BY scope ASC, idx ASC. Timestamps are
// informational only. Appends are checked inside a transaction so a scope's
// indices stay contiguous from zero.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Operations must belong to a known document
package store
