// Package domain contains core business entities and rules.
package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// TimestampLayout is the wire format for quote timestamps: ISO-8601 with
// millisecond precision, matching what clients already parse.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DateSeedLayout is the calendar-day form of a date seed (YYYY-MM-DD).
const DateSeedLayout = "2006-01-02"

// Quote is an inspirational quote with its author.
// Immutable once created; provenance is either the static fallback table
// or a runtime generation.
type Quote struct {
	// Text is the quote itself, conventionally at most 120 characters.
	Text string

	// Author is who the quote is attributed to.
	Author string
}

// CachedQuote pairs a quote with the timestamp it was produced at.
// The timestamp doubles as the cache-expiry reference for unseeded
// lookups and as the per-day key for date-seeded ones.
type CachedQuote struct {
	Quote     Quote
	Timestamp time.Time
}

// DateSeed returns the calendar-day portion of the entry's timestamp.
func (c CachedQuote) DateSeed() string {
	return c.Timestamp.UTC().Format(DateSeedLayout)
}

// NoonTimestamp returns the fixed noon-UTC instant for a date seed, so
// repeated lookups for the same day resolve to an identical timestamp.
func NoonTimestamp(dateSeed string) (time.Time, error) {
	day, err := time.Parse(DateSeedLayout, dateSeed)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date seed %q: %w", dateSeed, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC), nil
}

// HashSeed maps a seed string to a stable non-negative integer.
// Polynomial rolling hash (h = h*31 + code) over the seed's character
// codes with the accumulator wrapping at exactly 32 bits. The wrap width
// is load-bearing: it decides which fallback quote a given day selects,
// and determinism tests pin it.
func HashSeed(seed string) int {
	var h int32
	for _, r := range seed {
		h = h*31 + int32(r)
	}

	v := int(h)
	if v < 0 {
		v = -v
	}

	return v
}

// FallbackQuotes is the guaranteed-available quote tier for the AI path.
// Ordered; the seed hasher indexes into it.
var FallbackQuotes = []Quote{
	{Text: "Gratitude turns what we have into enough.", Author: "Aesop"},
}

// PickFallback selects a fallback quote. A non-empty seed selects
// deterministically via HashSeed; an empty seed selects uniformly at
// random. Never fails: the table is non-empty by construction.
func PickFallback(seed string) Quote {
	if seed != "" {
		return FallbackQuotes[HashSeed(seed)%len(FallbackQuotes)]
	}

	return FallbackQuotes[rand.IntN(len(FallbackQuotes))]
}

// ClassicQuotes backs the plain, non-AI quote endpoint. A separate code
// path from the AI subsystem, kept for completeness.
var ClassicQuotes = []Quote{
	{Text: "Gratitude turns what we have into enough.", Author: "Aesop"},
	{Text: "Every moment is a fresh beginning.", Author: "T.S. Eliot"},
	{Text: "The most wasted of days is one without laughter.", Author: "E.E. Cummings"},
}

// RandomClassicQuote returns a uniformly random entry from ClassicQuotes.
func RandomClassicQuote() Quote {
	return ClassicQuotes[rand.IntN(len(ClassicQuotes))]
}
