package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/clients"
	"github.com/fiveminutevibe/vibe-service/internal/domain"
	"github.com/fiveminutevibe/vibe-service/internal/platform/logging"
)

const (
	// warpcastServiceName identifies the downstream service in errors and logs.
	warpcastServiceName = "warpcast"

	// defaultWarpcastAuthorizeURL is where users approve the login.
	defaultWarpcastAuthorizeURL = "https://warpcast.com/oauth"

	// defaultWarpcastAPIBaseURL fronts the token, profile and cast endpoints.
	defaultWarpcastAPIBaseURL = "https://api.warpcast.com"
)

// WarpcastConfig contains configuration for the Warpcast adapter.
type WarpcastConfig struct {
	// ClientID and ClientSecret come from the Farcaster developer dashboard.
	ClientID     string
	ClientSecret string

	// RedirectURL is this service's callback endpoint, registered upstream.
	RedirectURL string

	// AuthorizeURL optionally overrides the user-facing authorize page.
	AuthorizeURL string

	// APIBaseURL optionally overrides the API host, for tests.
	APIBaseURL string

	// Client is the instrumented HTTP client for API calls.
	// Its BaseURL should match APIBaseURL.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// Warpcast implements ports.IdentityProvider and ports.CastPublisher
// against the Warpcast OAuth and cast APIs. The OAuth legs ride on
// golang.org/x/oauth2; the authenticated API calls ride on the
// instrumented client so they get retries, breaker, and tracing.
type Warpcast struct {
	BaseAdapter

	oauth      oauth2.Config
	apiBaseURL string
	logger     *slog.Logger
}

// NewWarpcast creates a new Warpcast adapter.
// Panics if Client is nil or the OAuth credentials are empty.
func NewWarpcast(cfg WarpcastConfig) *Warpcast {
	if cfg.Client == nil {
		panic("Warpcast: Client is required")
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		panic("Warpcast: ClientID and ClientSecret are required")
	}

	authorizeURL := cfg.AuthorizeURL
	if authorizeURL == "" {
		authorizeURL = defaultWarpcastAuthorizeURL
	}

	apiBaseURL := cfg.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultWarpcastAPIBaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Warpcast{
		BaseAdapter: NewBaseAdapter(cfg.Client, warpcastServiceName),
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authorizeURL,
				TokenURL: apiBaseURL + "/v2/oauth/token",
			},
		},
		apiBaseURL: apiBaseURL,
		logger:     logger,
	}
}

// AuthorizeURL builds the Warpcast authorize URL carrying the CSRF state.
// Implements ports.IdentityProvider.
func (w *Warpcast) AuthorizeURL(state string) string {
	return w.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for an access token.
// Implements ports.IdentityProvider.
func (w *Warpcast) ExchangeCode(ctx context.Context, code string) (string, error) {
	w.logger.Log(ctx, logging.LevelTrace, "starting token exchange")

	token, err := w.oauth.Exchange(ctx, code)
	if err != nil {
		return "", domain.NewUnavailableError(warpcastServiceName, "token exchange failed: "+err.Error())
	}

	if token.AccessToken == "" {
		return "", domain.NewUnavailableError(warpcastServiceName, "token response has no access token")
	}

	return token.AccessToken, nil
}

// warpcastUserEnvelope is the external DTO from GET /v2/me.
type warpcastUserEnvelope struct {
	Result struct {
		User struct {
			FID         int64  `json:"fid"`
			Username    string `json:"username"`
			DisplayName string `json:"displayName"`
			Pfp         struct {
				URL string `json:"url"`
			} `json:"pfp"`
		} `json:"user"`
	} `json:"result"`
}

// FetchProfile resolves the profile behind an access token.
// Implements ports.IdentityProvider.
func (w *Warpcast) FetchProfile(ctx context.Context, accessToken string) (*domain.Profile, error) {
	const operation = "fetch profile"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.apiBaseURL+"/v2/me", nil)
	if err != nil {
		return nil, domain.NewUnavailableError(warpcastServiceName, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, err := w.DoRequest(ctx, req, operation)
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[warpcastUserEnvelope](body)
	if err != nil {
		return nil, domain.NewUnavailableError(warpcastServiceName, err.Error())
	}

	return w.translateProfile(ext)
}

// translateProfile validates and converts the /v2/me DTO.
func (w *Warpcast) translateProfile(ext *warpcastUserEnvelope) (*domain.Profile, error) {
	user := ext.Result.User

	if err := ValidateRequired(user.Username, "username"); err != nil {
		return nil, domain.NewUnavailableError(warpcastServiceName, "profile response has no username")
	}

	return &domain.Profile{
		FID:          user.FID,
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		ProfileImage: user.Pfp.URL,
	}, nil
}

// warpcastCastEnvelope is the external DTO from POST /v2/casts.
type warpcastCastEnvelope struct {
	Result struct {
		Cast struct {
			Hash       string `json:"hash"`
			ThreadHash string `json:"threadHash"`
			Text       string `json:"text"`
			Timestamp  int64  `json:"timestamp"`
		} `json:"cast"`
	} `json:"result"`
}

// PublishCast posts the text as a cast.
// Implements ports.CastPublisher.
func (w *Warpcast) PublishCast(ctx context.Context, accessToken, text string) (*domain.Cast, error) {
	const operation = "publish cast"

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, domain.NewUnavailableError(warpcastServiceName, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.apiBaseURL+"/v2/casts", bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewUnavailableError(warpcastServiceName, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, err := w.DoRequest(ctx, req, operation)
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[warpcastCastEnvelope](body)
	if err != nil {
		return nil, domain.NewUnavailableError(warpcastServiceName, err.Error())
	}

	cast := &domain.Cast{
		Hash:       ext.Result.Cast.Hash,
		ThreadHash: ext.Result.Cast.ThreadHash,
		Text:       ext.Result.Cast.Text,
	}

	// Warpcast timestamps casts in epoch milliseconds.
	if ext.Result.Cast.Timestamp > 0 {
		cast.PublishedAt = time.UnixMilli(ext.Result.Cast.Timestamp).UTC()
	}

	w.logger.DebugContext(ctx, "cast published upstream",
		slog.String("cast_hash", cast.Hash))

	return cast, nil
}
