package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
	"github.com/fiveminutevibe/vibe-service/internal/mocks"
)

func newTestDailyService(t *testing.T, repo *mocks.MockJournalRepository) (*DailyService, *QuoteCache) {
	t.Helper()

	cache := NewQuoteCache()
	quotes := NewQuoteService(QuoteServiceConfig{Cache: cache, Logger: discardLogger()})
	journal := NewJournalService(JournalServiceConfig{Repository: repo, Logger: discardLogger()})

	return NewDailyService(quotes, journal), cache
}

func TestDailyService_Digest(t *testing.T) {
	entry := testJournalEntry()

	repo := mocks.NewMockJournalRepository(t)
	repo.EXPECT().
		Get(mock.Anything, "2024-06-01").
		Return(entry, nil).
		Once()

	svc, cache := newTestDailyService(t, repo)

	noon, err := domain.NoonTimestamp("2024-06-01")
	require.NoError(t, err)
	cached := cache.InsertAt(domain.Quote{Text: "cached wisdom", Author: "AI Wisdom"}, noon)

	digest, err := svc.Digest(context.Background(), "2024-06-01")

	require.NoError(t, err)
	assert.Equal(t, cached, digest.Quote)
	assert.Equal(t, entry, digest.Journal)
}

func TestDailyService_Digest_QuoteSideNeverFails(t *testing.T) {
	// Empty cache and no generator still yields a quote via fallback.
	repo := mocks.NewMockJournalRepository(t)
	repo.EXPECT().
		Get(mock.Anything, "2024-06-01").
		Return(nil, domain.NewNotFoundError("journal entry", "2024-06-01")).
		Once()

	svc, _ := newTestDailyService(t, repo)

	digest, err := svc.Digest(context.Background(), "2024-06-01")

	require.NoError(t, err)
	assert.Equal(t, domain.PickFallback("2024-06-01"), digest.Quote.Quote)
	assert.Equal(t, domain.EmptyJournalEntry(), *digest.Journal)
}

func TestDailyService_Digest_JournalFailureFailsDigest(t *testing.T) {
	repo := mocks.NewMockJournalRepository(t)
	repo.EXPECT().
		Get(mock.Anything, "2024-06-01").
		Return(nil, errors.New("db closed")).
		Once()

	svc, _ := newTestDailyService(t, repo)

	_, err := svc.Digest(context.Background(), "2024-06-01")

	assert.Error(t, err)
}

func TestDailyService_Digest_RejectsBadDate(t *testing.T) {
	repo := mocks.NewMockJournalRepository(t)
	svc, _ := newTestDailyService(t, repo)

	_, err := svc.Digest(context.Background(), "yesterday")

	assert.True(t, domain.IsValidation(err))
}
