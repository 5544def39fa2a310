package ir

// Version constants for the canonical form and the reducer runtime.
const (
	// FormatVersion is the canonical payload format version.
	FormatVersion = "1"

	// RuntimeVersion is the docreduce runtime version.
	RuntimeVersion = "0.1.0"
)
