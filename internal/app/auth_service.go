package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
	"github.com/fiveminutevibe/vibe-service/internal/ports"
)

// Login failure stages. The HTTP layer maps each to its own redirect
// error code, so they stay distinguishable with errors.Is.
var (
	// ErrStateMismatch means the callback's state nonce did not match
	// the one issued at redirect time.
	ErrStateMismatch = errors.New("oauth state mismatch")

	// ErrTokenExchange means the authorization code could not be traded
	// for an access token.
	ErrTokenExchange = errors.New("token exchange failed")

	// ErrProfileFetch means the access token was issued but the profile
	// lookup behind it failed.
	ErrProfileFetch = errors.New("profile fetch failed")
)

// AuthService drives the identity-provider login handshake. Each login
// attempt walks the domain.LoginFlow state machine; the per-attempt
// state itself lives in cookies, so the service holds no session state.
type AuthService struct {
	provider ports.IdentityProvider
	logger   *slog.Logger
}

// AuthServiceConfig contains configuration for the auth service.
type AuthServiceConfig struct {
	Provider ports.IdentityProvider
	Logger   *slog.Logger
}

// NewAuthService creates a new auth service with the provided dependencies.
// Panics if Provider is nil.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	if cfg.Provider == nil {
		panic("AuthService: Provider is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		provider: cfg.Provider,
		logger:   logger,
	}
}

// Begin starts a login attempt: it mints a fresh CSRF state nonce and
// returns it along with the provider authorize URL carrying it.
func (s *AuthService) Begin(ctx context.Context) (state, redirectURL string, err error) {
	flow := domain.NewLoginFlow()

	state = uuid.NewString()
	redirectURL = s.provider.AuthorizeURL(state)

	if err := flow.Apply(domain.EventRedirectIssued); err != nil {
		return "", "", err
	}

	s.logger.InfoContext(ctx, "login redirect issued",
		slog.String("login_state", string(flow.State())))

	return state, redirectURL, nil
}

// Complete finishes a login attempt from the provider callback. It
// verifies the state nonce, exchanges the code, and resolves the profile.
// Failures wrap the stage sentinels above.
func (s *AuthService) Complete(ctx context.Context, expectedState, gotState, code string) (string, *domain.Profile, error) {
	flow := domain.NewLoginFlow()
	if err := flow.Apply(domain.EventRedirectIssued); err != nil {
		return "", nil, err
	}

	if expectedState == "" || gotState != expectedState {
		s.logger.WarnContext(ctx, "login callback rejected",
			slog.String("reason", "state mismatch"))
		return "", nil, ErrStateMismatch
	}

	if err := flow.Apply(domain.EventCallbackReceived); err != nil {
		return "", nil, err
	}

	token, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.WarnContext(ctx, "token exchange failed", slog.Any("error", err))
		return "", nil, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}

	profile, err := s.provider.FetchProfile(ctx, token)
	if err != nil {
		s.logger.WarnContext(ctx, "profile fetch failed", slog.Any("error", err))
		return "", nil, fmt.Errorf("%w: %w", ErrProfileFetch, err)
	}

	if err := flow.Apply(domain.EventProfileFetched); err != nil {
		return "", nil, err
	}

	s.logger.InfoContext(ctx, "login completed",
		slog.String("login_state", string(flow.State())),
		slog.Int64("fid", profile.FID),
		slog.String("username", profile.Username))

	return token, profile, nil
}

// Logout ends a login attempt. Session teardown is a cookie concern, so
// the only server-side work is the flow transition and an audit line.
func (s *AuthService) Logout(ctx context.Context, identity domain.Identity) {
	flow := domain.NewLoginFlow()
	_ = flow.Apply(domain.EventLogout)

	if profile, ok := identity.Profile(); ok {
		s.logger.InfoContext(ctx, "logout",
			slog.Int64("fid", profile.FID),
			slog.String("username", profile.Username))
		return
	}

	s.logger.InfoContext(ctx, "logout for anonymous session")
}
