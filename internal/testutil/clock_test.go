package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedClock_NeverMoves(t *testing.T) {
	clock := NewFixedClock(Epoch)
	assert.Equal(t, Epoch, clock.Now())
	assert.Equal(t, Epoch, clock.Now())
}

func TestSteppingClock_StartsAtBase(t *testing.T) {
	clock := NewDefaultSteppingClock()
	assert.Equal(t, Epoch, clock.Current())
	assert.Equal(t, int64(0), clock.Steps())
}

func TestSteppingClock_NowAdvancesMonotonically(t *testing.T) {
	clock := NewSteppingClock(Epoch, time.Minute)

	assert.Equal(t, Epoch.Add(time.Minute), clock.Now())
	assert.Equal(t, Epoch.Add(2*time.Minute), clock.Now())
	assert.Equal(t, Epoch.Add(3*time.Minute), clock.Now())
	assert.Equal(t, Epoch.Add(3*time.Minute), clock.Current())
}

func TestSteppingClock_Reset(t *testing.T) {
	clock := NewDefaultSteppingClock()
	clock.Now()
	clock.Now()

	clock.Reset()
	assert.Equal(t, int64(0), clock.Steps())

	// First call after reset repeats the first timestamp.
	assert.Equal(t, Epoch.Add(time.Second), clock.Now())
}

func TestSteppingClock_ThreadSafe(t *testing.T) {
	clock := NewDefaultSteppingClock()
	const numGoroutines = 50
	const callsPerGoroutine = 100

	var wg sync.WaitGroup
	seen := make(chan time.Time, numGoroutines*callsPerGoroutine)
	for range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range callsPerGoroutine {
				seen <- clock.Now()
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[time.Time]bool)
	for ts := range seen {
		require.False(t, unique[ts], "duplicate timestamp %s", ts)
		unique[ts] = true
	}
	assert.Len(t, unique, numGoroutines*callsPerGoroutine)
}

func TestSequentialIDs(t *testing.T) {
	ids := NewSequentialIDs("")
	assert.Equal(t, "doc-0001", ids.NewID())
	assert.Equal(t, "doc-0002", ids.NewID())

	named := NewSequentialIDs("agr")
	assert.Equal(t, "agr-0001", named.NewID())
}
