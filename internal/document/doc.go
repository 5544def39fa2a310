// Package document implements the operation-sourced state reducer shared by
// every document type.
//
// A document's state is never stored directly. It is derived by folding an
// ordered log of validated actions over an initial state:
//
//	raw input → Validator → Factory → Action → Document.Apply → Reduce → handler
//
// Each stage is independently testable. The Validator stage is an interface
// so it can be replaced (e.g. by a fuzzing stub) without touching reducers.
//
// # Guarantees
//
//   - Atomicity: a handler works on a clone. If it returns an error the
//     document's state, history and revision are unchanged.
//   - Monotonic indices: records in a scope carry indices 0..N-1 in order.
//   - Determinism: Replay over a history produces the same state, byte for
//     byte, as applying the same actions one at a time.
//
// # Concurrency
//
// A Document has a single logical writer. It does no locking; hosts that
// accept concurrent callers must serialize Apply per document (see the
// engine package).
package document
