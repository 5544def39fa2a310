package schema

import (
	"fmt"
	"strings"

	"github.com/roach88/docreduce/internal/document"
)

// FieldIssue is one problem found in a payload.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationFailure lists every problem found in one payload, sorted by
// field path. It matches document.ErrInvalidInput.
type ValidationFailure struct {
	DocumentType string       `json:"document_type"`
	Kind         string       `json:"kind"`
	Issues       []FieldIssue `json:"issues"`
}

// Error implements the error interface.
func (f *ValidationFailure) Error() string {
	parts := make([]string, len(f.Issues))
	for i, issue := range f.Issues {
		if issue.Field == "" {
			parts[i] = issue.Message
			continue
		}
		parts[i] = issue.Field + ": " + issue.Message
	}
	return fmt.Sprintf("invalid %s/%s input: %s", f.DocumentType, f.Kind, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, document.ErrInvalidInput) true.
func (f *ValidationFailure) Is(target error) bool {
	return target == document.ErrInvalidInput
}

// Fields returns the failing field paths in order.
func (f *ValidationFailure) Fields() []string {
	out := make([]string, len(f.Issues))
	for i, issue := range f.Issues {
		out[i] = issue.Field
	}
	return out
}
