// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Methods represent business operations, not CRUD operations
package ports

import (
	"context"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

// QuoteGenerator produces one novel inspirational quote per call.
// Implementations talk to a text-generation service; any transport error,
// empty response, or malformed payload surfaces as domain.ErrUnavailable
// so the caller can drop to the fallback tier.
type QuoteGenerator interface {
	// Generate returns a freshly generated quote.
	// The implementation must respect context deadlines and cancellation.
	Generate(ctx context.Context) (*domain.Quote, error)
}

// IdentityProvider is the third-party login collaborator.
type IdentityProvider interface {
	// AuthorizeURL builds the provider's authorize URL carrying the
	// given CSRF state nonce.
	AuthorizeURL(state string) string

	// ExchangeCode trades an authorization code for an access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile resolves the profile behind an access token.
	// Returns domain.ErrUnauthorized if the token is rejected upstream.
	FetchProfile(ctx context.Context, accessToken string) (*domain.Profile, error)
}

// CastPublisher posts text to the social network on behalf of a user.
type CastPublisher interface {
	// PublishCast posts the text using the given access token and
	// returns the created cast. Returns domain.ErrUnauthorized when the
	// upstream reports a missing or expired token.
	PublishCast(ctx context.Context, accessToken, text string) (*domain.Cast, error)
}

// JournalRepository persists journal entries keyed by calendar day,
// honoring the journal_<YYYY-MM-DD> key contract.
type JournalRepository interface {
	// Get retrieves the entry for a date seed.
	// Returns domain.ErrNotFound if the day has no entry.
	Get(ctx context.Context, dateSeed string) (*domain.JournalEntry, error)

	// Put stores the entry for a date seed, replacing any existing one.
	Put(ctx context.Context, dateSeed string, entry *domain.JournalEntry) error

	// ListDates returns stored date seeds in descending order, newest
	// first, for paginated listing.
	ListDates(ctx context.Context, offset, limit int) ([]string, int, error)
}
