// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
	"github.com/fiveminutevibe/vibe-service/internal/ports"
)

// FlagAIQuotes gates the generation tier. When off, daily quotes come
// from cache and fallback only.
const FlagAIQuotes = "ai_quotes_enabled"

// QuoteService orchestrates daily-quote retrieval across three tiers:
// cache, generation, fallback. Its central invariant is that retrieval
// never fails - every call resolves to some quote.
type QuoteService struct {
	generator ports.QuoteGenerator
	cache     *QuoteCache
	flags     ports.FeatureFlags
	logger    *slog.Logger
	now       func() time.Time
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Generator ports.QuoteGenerator
	Cache     *QuoteCache
	Flags     ports.FeatureFlags
	Logger    *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Cache is nil. A nil Generator disables the generation tier;
// a nil Logger defaults to slog.Default().
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Cache == nil {
		panic("QuoteService: Cache is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		generator: cfg.Generator,
		cache:     cfg.Cache,
		flags:     cfg.Flags,
		logger:    logger,
		now:       time.Now,
	}
}

// DailyQuote resolves a quote for the given optional date seed.
// Tiers, in strict order: cache, generation, fallback. Errors anywhere
// in the first two tiers are logged and demoted to the fallback tier,
// never surfaced to the caller.
func (s *QuoteService) DailyQuote(ctx context.Context, dateSeed string) domain.CachedQuote {
	// Tier 1: cache. A date that already resolved to a cached quote is
	// final and never regenerated, even past the expiry window.
	if dateSeed != "" {
		if entry, ok := s.cache.FindByDate(dateSeed); ok {
			s.logger.DebugContext(ctx, "daily quote served from cache",
				slog.String("date_seed", dateSeed))
			return entry
		}
	} else {
		if entry, ok := s.cache.GetRandom(); ok {
			s.logger.DebugContext(ctx, "daily quote served from cache")
			return entry
		}
	}

	// Tier 2: generation.
	if entry, ok := s.generate(ctx, dateSeed); ok {
		return entry
	}

	// Tier 3: fallback. Cannot fail.
	entry := domain.CachedQuote{
		Quote:     domain.PickFallback(dateSeed),
		Timestamp: s.timestampFor(dateSeed),
	}

	s.logger.InfoContext(ctx, "daily quote served from fallback table",
		slog.String("date_seed", dateSeed),
		slog.String("author", entry.Quote.Author))

	return entry
}

// generate runs the generation tier. Returns false on any failure so the
// caller can drop to the fallback tier.
func (s *QuoteService) generate(ctx context.Context, dateSeed string) (domain.CachedQuote, bool) {
	if s.generator == nil {
		return domain.CachedQuote{}, false
	}

	if s.flags != nil && !s.flags.IsEnabled(ctx, FlagAIQuotes, true) {
		s.logger.DebugContext(ctx, "generation tier disabled by flag")
		return domain.CachedQuote{}, false
	}

	quote, err := s.generator.Generate(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "quote generation failed, falling back",
			slog.String("date_seed", dateSeed),
			slog.Any("error", err))
		return domain.CachedQuote{}, false
	}

	// For seeded retrievals the stored entry and the returned value
	// carry the same pinned noon timestamp.
	var entry domain.CachedQuote
	if dateSeed != "" {
		noon, tsErr := domain.NoonTimestamp(dateSeed)
		if tsErr != nil {
			s.logger.WarnContext(ctx, "bad date seed on generated quote",
				slog.String("date_seed", dateSeed),
				slog.Any("error", tsErr))
			return domain.CachedQuote{}, false
		}
		entry = s.cache.InsertAt(*quote, noon)
	} else {
		entry = s.cache.Insert(*quote)
	}

	s.logger.InfoContext(ctx, "daily quote generated",
		slog.String("date_seed", dateSeed),
		slog.String("author", entry.Quote.Author))

	return entry, true
}

// timestampFor pins seeded timestamps to noon UTC of the seed's day and
// stamps unseeded ones with the current time.
func (s *QuoteService) timestampFor(dateSeed string) time.Time {
	if dateSeed != "" {
		if noon, err := domain.NoonTimestamp(dateSeed); err == nil {
			return noon
		}
	}

	return s.now()
}

// RandomQuote serves the plain, non-AI quote path: a uniformly random
// entry from the static table stamped with the current time.
func (s *QuoteService) RandomQuote() domain.CachedQuote {
	return domain.CachedQuote{
		Quote:     domain.RandomClassicQuote(),
		Timestamp: s.now(),
	}
}
