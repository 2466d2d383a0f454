package app

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

// fixedClock returns a now func pinned to t, advanced via the pointer.
func fixedClock(t time.Time) (*time.Time, func() time.Time) {
	current := t
	return &current, func() time.Time { return current }
}

func TestQuoteCache_Bound(t *testing.T) {
	cache := NewQuoteCache()

	for i := range 30 {
		cache.Insert(domain.Quote{Text: fmt.Sprintf("quote %d", i), Author: "AI Wisdom"})
	}

	assert.Equal(t, MaxCacheSize, cache.Len())

	// The 20 most recent survive; the first 10 were evicted FIFO.
	_, ok := cache.FindByDate("1970-01-01")
	assert.False(t, ok)

	cache.mu.Lock()
	first := cache.entries[0].Quote.Text
	last := cache.entries[len(cache.entries)-1].Quote.Text
	cache.mu.Unlock()

	assert.Equal(t, "quote 10", first)
	assert.Equal(t, "quote 29", last)
}

func TestQuoteCache_Expiry(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	clock, now := fixedClock(start)

	cache := NewQuoteCache()
	cache.now = now

	cache.Insert(domain.Quote{Text: "still fresh", Author: "AI Wisdom"})

	// Just inside the window.
	*clock = start.Add(23*time.Hour + 59*time.Minute)
	entry, ok := cache.GetRandom()
	require.True(t, ok)
	assert.Equal(t, "still fresh", entry.Quote.Text)

	// Just past the window: lazily purged on read.
	*clock = start.Add(24*time.Hour + time.Minute)
	_, ok = cache.GetRandom()
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestQuoteCache_FindByDate_SkipsPurge(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock, now := fixedClock(start)

	cache := NewQuoteCache()
	cache.now = now

	noon, err := domain.NoonTimestamp("2024-06-01")
	require.NoError(t, err)
	cache.InsertAt(domain.Quote{Text: "for the day", Author: "AI Wisdom"}, noon)

	// Two simulated days later the date-seeded entry is still served:
	// it is definitionally valid for its day, whatever the clock says.
	*clock = start.Add(48 * time.Hour)
	entry, ok := cache.FindByDate("2024-06-01")
	require.True(t, ok)
	assert.Equal(t, "for the day", entry.Quote.Text)
	assert.Equal(t, noon, entry.Timestamp)
}

func TestQuoteCache_InsertAt_ForcesTimestamp(t *testing.T) {
	cache := NewQuoteCache()

	noon, err := domain.NoonTimestamp("2024-06-01")
	require.NoError(t, err)

	entry := cache.InsertAt(domain.Quote{Text: "x", Author: "y"}, noon)
	assert.Equal(t, "2024-06-01T12:00:00.000Z", entry.Timestamp.Format(domain.TimestampLayout))
}

func TestQuoteCache_GetRandom_Empty(t *testing.T) {
	cache := NewQuoteCache()

	_, ok := cache.GetRandom()
	assert.False(t, ok)
}

func TestQuoteCache_ConcurrentAccess(t *testing.T) {
	cache := NewQuoteCache()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)

		go func() {
			defer wg.Done()
			cache.Insert(domain.Quote{Text: fmt.Sprintf("q%d", i), Author: "a"})
		}()

		go func() {
			defer wg.Done()
			cache.GetRandom()
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), MaxCacheSize)
}
