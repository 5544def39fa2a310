package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix leaves room for algorithm migration.
const (
	DomainAction = "docreduce/action/v1"
	DomainState  = "docreduce/state/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ActionID computes the content id of an action envelope.
// Two actions with the same document type, kind, scope, input and timestamp
// share an id; the history index is not part of the identity.
func ActionID(docType, kind, scope string, input Object, timestamp string) (string, error) {
	obj := Object{
		"document_type": String(docType),
		"kind":          String(kind),
		"scope":         String(scope),
		"input":         input,
		"timestamp":     String(timestamp),
	}
	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("action id: %w", err)
	}
	return hashWithDomain(DomainAction, canonical), nil
}

// StateDigest hashes the canonical form of a state value.
func StateDigest(state Value) (string, error) {
	canonical, err := MarshalCanonical(state)
	if err != nil {
		return "", fmt.Errorf("state digest: %w", err)
	}
	return hashWithDomain(DomainState, canonical), nil
}

// MustActionID is like ActionID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustActionID(docType, kind, scope string, input Object, timestamp string) string {
	id, err := ActionID(docType, kind, scope, input, timestamp)
	if err != nil {
		panic(err)
	}
	return id
}
