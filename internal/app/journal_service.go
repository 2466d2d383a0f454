package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
	"github.com/fiveminutevibe/vibe-service/internal/ports"
)

// Journal listing bounds.
const (
	DefaultJournalPageSize = 20
	MaxJournalPageSize     = 100
)

// JournalService manages day-keyed journal entries.
type JournalService struct {
	repo   ports.JournalRepository
	logger *slog.Logger
}

// JournalServiceConfig contains configuration for the journal service.
type JournalServiceConfig struct {
	Repository ports.JournalRepository
	Logger     *slog.Logger
}

// NewJournalService creates a new journal service with the provided dependencies.
// Panics if Repository is nil.
func NewJournalService(cfg JournalServiceConfig) *JournalService {
	if cfg.Repository == nil {
		panic("JournalService: Repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &JournalService{
		repo:   cfg.Repository,
		logger: logger,
	}
}

// Entry returns the journal for a day. A day never written resolves to
// the empty entry, so clients always render the same three-prompt shape.
func (s *JournalService) Entry(ctx context.Context, dateSeed string) (*domain.JournalEntry, error) {
	if err := validateDateSeed(dateSeed); err != nil {
		return nil, err
	}

	entry, err := s.repo.Get(ctx, dateSeed)
	if err != nil {
		if domain.IsNotFound(err) {
			empty := domain.EmptyJournalEntry()
			return &empty, nil
		}

		return nil, err
	}

	return entry, nil
}

// Save stores the journal for a day, replacing any previous entry.
func (s *JournalService) Save(ctx context.Context, dateSeed string, entry *domain.JournalEntry) error {
	if err := validateDateSeed(dateSeed); err != nil {
		return err
	}

	if err := entry.Validate(); err != nil {
		return err
	}

	if err := s.repo.Put(ctx, dateSeed, entry); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "journal entry saved",
		slog.String("date_seed", dateSeed))

	return nil
}

// List returns stored journal dates newest first, with the total count
// for pagination.
func (s *JournalService) List(ctx context.Context, offset, limit int) ([]string, int, error) {
	if offset < 0 {
		offset = 0
	}

	if limit <= 0 {
		limit = DefaultJournalPageSize
	}

	if limit > MaxJournalPageSize {
		limit = MaxJournalPageSize
	}

	return s.repo.ListDates(ctx, offset, limit)
}

// DecodeShared parses a share-link payload: a URL-encoded JSON rendering
// of a journal entry. The payload is untrusted client input, so it is
// validated like any other entry.
func (s *JournalService) DecodeShared(raw string) (*domain.JournalEntry, error) {
	if raw == "" {
		return nil, domain.NewValidationError("data", "share payload is required")
	}

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, domain.NewValidationError("data", "share payload is not URL-encoded")
	}

	var entry domain.JournalEntry
	if err := json.Unmarshal([]byte(decoded), &entry); err != nil {
		return nil, domain.NewValidationError("data", "share payload is not valid JSON")
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return &entry, nil
}

// validateDateSeed rejects anything that is not a YYYY-MM-DD calendar day.
func validateDateSeed(dateSeed string) error {
	if _, err := time.Parse(domain.DateSeedLayout, dateSeed); err != nil {
		return domain.NewValidationError("date", "must be a YYYY-MM-DD date")
	}

	return nil
}
