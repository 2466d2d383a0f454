package app

import (
	"context"
	"log/slog"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
	"github.com/fiveminutevibe/vibe-service/internal/ports"
)

// SocialService posts casts on behalf of logged-in users.
type SocialService struct {
	publisher ports.CastPublisher
	logger    *slog.Logger
}

// SocialServiceConfig contains configuration for the social service.
type SocialServiceConfig struct {
	Publisher ports.CastPublisher
	Logger    *slog.Logger
}

// NewSocialService creates a new social service with the provided dependencies.
// Panics if Publisher is nil.
func NewSocialService(cfg SocialServiceConfig) *SocialService {
	if cfg.Publisher == nil {
		panic("SocialService: Publisher is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SocialService{
		publisher: cfg.Publisher,
		logger:    logger,
	}
}

// Post publishes the text as a cast using the caller's access token.
func (s *SocialService) Post(ctx context.Context, accessToken, text string) (*domain.Cast, error) {
	if accessToken == "" {
		return nil, domain.NewUnauthorizedError("missing access token")
	}

	if err := domain.ValidateCastText(text); err != nil {
		return nil, err
	}

	cast, err := s.publisher.PublishCast(ctx, accessToken, text)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cast published",
		slog.String("cast_hash", cast.Hash))

	return cast, nil
}
