package app

import (
	"context"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

// DailyDigest is everything the app needs to render one day: the quote
// for that day and the day's journal entry.
type DailyDigest struct {
	Quote   domain.CachedQuote
	Journal *domain.JournalEntry
}

// DailyService composes the quote and journal services for the one-call
// day view.
type DailyService struct {
	quotes  *QuoteService
	journal *JournalService
}

// NewDailyService creates a new daily service. Panics if either
// dependency is nil.
func NewDailyService(quotes *QuoteService, journal *JournalService) *DailyService {
	if quotes == nil || journal == nil {
		panic("DailyService: quote and journal services are required")
	}

	return &DailyService{quotes: quotes, journal: journal}
}

// Digest fetches the day's quote and journal entry concurrently. The
// quote side cannot fail; a journal failure fails the digest.
func (s *DailyService) Digest(ctx context.Context, dateSeed string) (*DailyDigest, error) {
	if err := validateDateSeed(dateSeed); err != nil {
		return nil, err
	}

	quote, entry, err := Parallel2(ctx,
		func(ctx context.Context) (domain.CachedQuote, error) {
			return s.quotes.DailyQuote(ctx, dateSeed), nil
		},
		func(ctx context.Context) (*domain.JournalEntry, error) {
			return s.journal.Entry(ctx, dateSeed)
		},
	)
	if err != nil {
		return nil, err
	}

	return &DailyDigest{Quote: quote, Journal: entry}, nil
}
