package app

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

// Cache sizing and expiry. Generated quotes older than the expiry are
// lazily purged on read; there is no background sweep.
const (
	// MaxCacheSize bounds the cache; inserting beyond it evicts the
	// oldest entry (FIFO).
	MaxCacheSize = 20

	// CacheExpiry is how long an unseeded entry stays servable.
	CacheExpiry = 24 * time.Hour
)

// QuoteCache holds previously generated quotes in memory for the
// lifetime of the process. Entries are never mutated in place, only
// appended or removed; insertion order is recency order. A restart
// silently clears it, which is fine because the fallback table
// guarantees availability.
//
// All operations serialize on one mutex, so concurrent requests cannot
// interleave a purge with an insert.
type QuoteCache struct {
	mu      sync.Mutex
	entries []domain.CachedQuote
	maxSize int
	expiry  time.Duration

	// now is overridable for expiry tests.
	now func() time.Time
}

// NewQuoteCache creates an empty cache with the default bounds.
func NewQuoteCache() *QuoteCache {
	return &QuoteCache{
		maxSize: MaxCacheSize,
		expiry:  CacheExpiry,
		now:     time.Now,
	}
}

// PurgeExpired drops every entry older than the expiry window.
func (c *QuoteCache) PurgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeLocked(c.now())
}

func (c *QuoteCache) purgeLocked(now time.Time) {
	kept := c.entries[:0]
	for _, e := range c.entries {
		if now.Sub(e.Timestamp) < c.expiry {
			kept = append(kept, e)
		}
	}

	c.entries = kept
}

// GetRandom purges expired entries, then returns a uniformly random one.
// The second return is false when the cache is empty. Used only for the
// no-date-seed path.
func (c *QuoteCache) GetRandom() (domain.CachedQuote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeLocked(c.now())

	if len(c.entries) == 0 {
		return domain.CachedQuote{}, false
	}

	return c.entries[rand.IntN(len(c.entries))], true
}

// FindByDate returns the entry whose timestamp's calendar day equals the
// date seed. No purge: a date-seeded quote is valid for exactly that day
// regardless of wall-clock age.
func (c *QuoteCache) FindByDate(dateSeed string) (domain.CachedQuote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.DateSeed() == dateSeed {
			return e, true
		}
	}

	return domain.CachedQuote{}, false
}

// Insert appends a new entry stamped with the current time, evicting the
// oldest entry once the bound is exceeded. Returns the stored entry.
func (c *QuoteCache) Insert(quote domain.Quote) domain.CachedQuote {
	return c.insert(quote, time.Time{})
}

// InsertAt appends a new entry with a forced timestamp (the date-seed
// case, where the timestamp is pinned to noon UTC of the seed's day).
func (c *QuoteCache) InsertAt(quote domain.Quote, timestamp time.Time) domain.CachedQuote {
	return c.insert(quote, timestamp)
}

func (c *QuoteCache) insert(quote domain.Quote, override time.Time) domain.CachedQuote {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := override
	if ts.IsZero() {
		ts = c.now()
	}

	entry := domain.CachedQuote{Quote: quote, Timestamp: ts}
	c.entries = append(c.entries, entry)

	if len(c.entries) > c.maxSize {
		c.entries = c.entries[1:]
	}

	return entry
}

// Len returns the number of cached entries.
func (c *QuoteCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
