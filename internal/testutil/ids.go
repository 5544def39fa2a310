package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs hands out predictable document ids: "<prefix>-0001",
// "<prefix>-0002", ...
//
// This keeps engine tests and golden snapshots stable across runs.
//
// Thread-safety: safe for concurrent use.
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequentialIDs creates a generator. An empty prefix becomes "doc".
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "doc"
	}
	return &SequentialIDs{prefix: prefix}
}

// NewID returns the next id.
func (g *SequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}
