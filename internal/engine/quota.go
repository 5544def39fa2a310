package engine

import (
	"strconv"

	"github.com/roach88/docreduce/internal/document"
)

// DefaultMaxRecords is the default history quota per document.
// This keeps a runaway client from growing one document without bound;
// every load replays the whole history.
const DefaultMaxRecords = 100_000

// checkQuota returns a HISTORY_LIMIT error when a document already holds
// max records across both scopes. A max of zero disables the check.
func checkQuota(h document.Handle, max int64) error {
	if max <= 0 {
		return nil
	}
	n := h.Revision(document.ScopeGlobal) + h.Revision(document.ScopeLocal)
	if n < max {
		return nil
	}
	return &HostError{
		Code:       ErrCodeHistoryLimit,
		Message:    "document history is full",
		DocumentID: h.ID(),
		Details:    map[string]string{"limit": strconv.FormatInt(max, 10)},
	}
}
