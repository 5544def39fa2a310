package document

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies action timestamps. Injected so tests are deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// NewID returns a time-ordered document id (UUIDv7).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source fails.
		return uuid.NewString()
	}
	return id.String()
}
