// Package schema validates raw action payloads against CUE definitions.
//
// Each document type ships one CUE source. Every definition whose name
// starts with a lower-case letter (#addRisk, #activateSubscription) is the
// schema for the action kind of the same name; upper-case definitions
// (#Timestamp, #Status) are shared helpers.
//
// Definitions are closed, so unknown fields are rejected. Validation checks
// structure and primitive constraints only: it never sees document state.
package schema
