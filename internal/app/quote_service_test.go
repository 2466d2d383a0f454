package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
	"github.com/fiveminutevibe/vibe-service/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestQuoteService(t *testing.T, generator *mocks.MockQuoteGenerator) (*QuoteService, *QuoteCache) {
	t.Helper()

	cache := NewQuoteCache()
	svc := NewQuoteService(QuoteServiceConfig{
		Generator: generator,
		Cache:     cache,
		Logger:    discardLogger(),
	})

	return svc, cache
}

func TestNewQuoteService_PanicsWithoutCache(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{})
	})
}

func TestQuoteService_DailyQuote_ServesCachedEntryForDate(t *testing.T) {
	// Generator must not be called when the date is already cached.
	generator := mocks.NewMockQuoteGenerator(t)
	svc, cache := newTestQuoteService(t, generator)

	noon, err := domain.NoonTimestamp("2024-06-01")
	require.NoError(t, err)
	cached := cache.InsertAt(domain.Quote{Text: "cached wisdom", Author: "Test"}, noon)

	got := svc.DailyQuote(context.Background(), "2024-06-01")

	assert.Equal(t, cached, got)
}

func TestQuoteService_DailyQuote_GeneratesAndCachesForDate(t *testing.T) {
	generator := mocks.NewMockQuoteGenerator(t)
	generator.EXPECT().
		Generate(context.Background()).
		Return(&domain.Quote{Text: "fresh wisdom", Author: "AI Wisdom"}, nil).
		Once()

	svc, cache := newTestQuoteService(t, generator)

	got := svc.DailyQuote(context.Background(), "2024-06-01")

	assert.Equal(t, "fresh wisdom", got.Quote.Text)
	assert.Equal(t, "2024-06-01T12:00:00.000Z", got.Timestamp.UTC().Format(domain.TimestampLayout))

	// The second retrieval for the same date hits the cache; the Once()
	// expectation above fails the test if the generator runs again.
	again := svc.DailyQuote(context.Background(), "2024-06-01")
	assert.Equal(t, got, again)
	assert.Equal(t, 1, cache.Len())
}

func TestQuoteService_DailyQuote_FallsBackWhenGenerationFails(t *testing.T) {
	generator := mocks.NewMockQuoteGenerator(t)
	generator.EXPECT().
		Generate(context.Background()).
		Return(nil, domain.NewUnavailableError("openai", "boom")).
		Once()

	svc, _ := newTestQuoteService(t, generator)

	got := svc.DailyQuote(context.Background(), "2024-06-01")

	assert.Equal(t, domain.PickFallback("2024-06-01"), got.Quote)
	assert.Equal(t, "2024-06-01T12:00:00.000Z", got.Timestamp.UTC().Format(domain.TimestampLayout))
}

func TestQuoteService_DailyQuote_UnseededFallbackStampsCurrentTime(t *testing.T) {
	generator := mocks.NewMockQuoteGenerator(t)
	generator.EXPECT().
		Generate(context.Background()).
		Return(nil, errors.New("boom")).
		Twice()

	svc, _ := newTestQuoteService(t, generator)

	times := []time.Time{
		time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 9, 5, 0, 0, time.UTC),
	}
	svc.now = func() time.Time {
		next := times[0]
		times = times[1:]
		return next
	}

	first := svc.DailyQuote(context.Background(), "")
	second := svc.DailyQuote(context.Background(), "")

	// Same fallback quote, freshly stamped on each call.
	assert.Equal(t, first.Quote, second.Quote)
	assert.NotEqual(t, first.Timestamp, second.Timestamp)
}

func TestQuoteService_DailyQuote_FlagDisablesGeneration(t *testing.T) {
	generator := mocks.NewMockQuoteGenerator(t)

	flags := mocks.NewMockFeatureFlags(t)
	flags.EXPECT().
		IsEnabled(context.Background(), FlagAIQuotes, true).
		Return(false).
		Once()

	cache := NewQuoteCache()
	svc := NewQuoteService(QuoteServiceConfig{
		Generator: generator,
		Cache:     cache,
		Flags:     flags,
		Logger:    discardLogger(),
	})

	got := svc.DailyQuote(context.Background(), "2024-06-01")

	assert.Equal(t, domain.PickFallback("2024-06-01"), got.Quote)
	assert.Equal(t, 0, cache.Len())
}

func TestQuoteService_DailyQuote_NilGeneratorFallsBack(t *testing.T) {
	cache := NewQuoteCache()
	svc := NewQuoteService(QuoteServiceConfig{
		Cache:  cache,
		Logger: discardLogger(),
	})

	got := svc.DailyQuote(context.Background(), "2024-06-01")

	assert.Equal(t, domain.PickFallback("2024-06-01"), got.Quote)
}

func TestQuoteService_DailyQuote_BadSeedOnGeneratedQuoteFallsBack(t *testing.T) {
	generator := mocks.NewMockQuoteGenerator(t)
	generator.EXPECT().
		Generate(context.Background()).
		Return(&domain.Quote{Text: "fresh wisdom", Author: "AI Wisdom"}, nil).
		Once()

	svc, cache := newTestQuoteService(t, generator)
	svc.now = func() time.Time {
		return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	}

	got := svc.DailyQuote(context.Background(), "not-a-date")

	// The generated quote cannot be pinned to a day, so nothing is
	// cached and the fallback tier answers.
	assert.Equal(t, domain.PickFallback("not-a-date"), got.Quote)
	assert.Equal(t, 0, cache.Len())
}

func TestQuoteService_DailyQuote_DateStaysStablePastExpiry(t *testing.T) {
	generator := mocks.NewMockQuoteGenerator(t)
	svc, cache := newTestQuoteService(t, generator)

	noon, err := domain.NoonTimestamp("2024-06-01")
	require.NoError(t, err)
	cached := cache.InsertAt(domain.Quote{Text: "pinned wisdom", Author: "AI Wisdom"}, noon)

	// Two days later the entry is long past the expiry window, but a
	// date-addressed lookup still resolves to it.
	cache.now = func() time.Time {
		return noon.Add(48 * time.Hour)
	}

	got := svc.DailyQuote(context.Background(), "2024-06-01")

	assert.Equal(t, cached, got)
}

func TestQuoteService_RandomQuote(t *testing.T) {
	cache := NewQuoteCache()
	svc := NewQuoteService(QuoteServiceConfig{
		Cache:  cache,
		Logger: discardLogger(),
	})

	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	got := svc.RandomQuote()

	assert.Contains(t, domain.ClassicQuotes, got.Quote)
	assert.Equal(t, now, got.Timestamp)
}
