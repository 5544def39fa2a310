package document

import "github.com/roach88/docreduce/internal/ir"

// Validator checks a raw action payload against the schema for
// (documentType, kind). On success it returns the parsed payload; on failure
// it returns an error matching ErrInvalidInput that lists every offending
// field. It never panics and never inspects state.
type Validator interface {
	Validate(documentType string, kind Kind, raw []byte) (ir.Object, error)
	Has(documentType string, kind Kind) bool
}
