package engine

import (
	"errors"
	"fmt"

	"github.com/roach88/docreduce/internal/document"
)

// HostError represents a failure in the engine itself, as opposed to a
// rejected action (document.ReducerError, schema.ValidationFailure).
type HostError struct {
	// Code identifies the error category.
	Code HostErrorCode

	// Message is a human-readable description.
	Message string

	// DocumentID identifies the affected document.
	DocumentID string

	// Details contains additional context.
	Details map[string]string
}

// HostErrorCode categorizes host errors.
type HostErrorCode string

const (
	// ErrCodeUnknownType indicates no model is registered for a type.
	ErrCodeUnknownType HostErrorCode = "UNKNOWN_TYPE"

	// ErrCodeCorruptLog indicates a stored record failed to rehydrate.
	ErrCodeCorruptLog HostErrorCode = "CORRUPT_LOG"

	// ErrCodeHistoryLimit indicates a document reached its record quota.
	ErrCodeHistoryLimit HostErrorCode = "HISTORY_LIMIT"

	// ErrCodePersist indicates an applied record could not be written.
	ErrCodePersist HostErrorCode = "PERSIST_FAILED"
)

// Error implements the error interface.
func (e *HostError) Error() string {
	if e.DocumentID != "" {
		return fmt.Sprintf("%s: %s (doc=%s)", e.Code, e.Message, e.DocumentID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func hostErrorCode(err error) (HostErrorCode, bool) {
	var he *HostError
	if errors.As(err, &he) {
		return he.Code, true
	}
	return "", false
}

// IsUnknownType reports whether err is an unknown document type error.
// Uses errors.As to handle wrapped errors.
func IsUnknownType(err error) bool {
	code, ok := hostErrorCode(err)
	return ok && code == ErrCodeUnknownType
}

// IsCorruptLog reports whether err came from a record that failed to
// rehydrate.
func IsCorruptLog(err error) bool {
	code, ok := hostErrorCode(err)
	return ok && code == ErrCodeCorruptLog
}

// IsHistoryLimit reports whether err is a record quota error.
func IsHistoryLimit(err error) bool {
	code, ok := hostErrorCode(err)
	return ok && code == ErrCodeHistoryLimit
}

// RejectionCode returns the label used for a rejected action in logs and
// metrics: the reducer error code when there is one, otherwise a coarse
// category.
func RejectionCode(err error) string {
	if code, ok := document.CodeOf(err); ok {
		return string(code)
	}
	if code, ok := hostErrorCode(err); ok {
		return string(code)
	}
	switch {
	case errors.Is(err, document.ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, document.ErrUnknownKind):
		return "UNKNOWN_KIND"
	case errors.Is(err, document.ErrScopeMismatch):
		return "SCOPE_MISMATCH"
	default:
		return "ERROR"
	}
}
