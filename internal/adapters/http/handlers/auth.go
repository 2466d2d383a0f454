package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/dto"
	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/middleware"
	"github.com/fiveminutevibe/vibe-service/internal/app"
	"github.com/fiveminutevibe/vibe-service/internal/platform/config"
	"github.com/fiveminutevibe/vibe-service/internal/platform/logging"
)

// Redirect error codes appended to the frontend URL on login failures.
// The frontend keys its error banners off these exact values.
const (
	loginErrInvalidState  = "invalid_state"
	loginErrTokenExchange = "token_exchange_failed"
	loginErrProfileFetch  = "profile_fetch_failed"
	loginErrServer        = "server_error"
	loginErrLogout        = "logout_failed"
)

// AuthHandler handles the identity-provider login flow endpoints.
type AuthHandler struct {
	service *app.AuthService
	cfg     *config.FarcasterConfig
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service *app.AuthService, cfg *config.FarcasterConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		cfg:     cfg,
	}
}

// BeginLogin handles GET /api/auth/farcaster
// Issues a CSRF state nonce, stores it in a short-lived HTTP-only cookie,
// and redirects to the provider's authorize URL.
func (h *AuthHandler) BeginLogin(c *gin.Context) {
	state, redirectURL, err := h.service.Begin(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.SetCookie(
		middleware.CookieAuthState,
		state,
		int(h.cfg.StateTTL.Seconds()),
		"/",
		"",
		h.cfg.SecureCookies,
		true,
	)

	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// CompleteLogin handles GET /api/auth/farcaster/callback
// Validates the state nonce, exchanges the code, fetches the profile, and
// redirects back to the frontend. Every failure mode redirects with a
// machine-readable error code rather than rendering an error page.
func (h *AuthHandler) CompleteLogin(c *gin.Context) {
	expectedState, _ := c.Cookie(middleware.CookieAuthState)
	gotState := c.Query("state")
	code := c.Query("code")

	// The state cookie is single-use regardless of outcome.
	h.clearCookie(c, middleware.CookieAuthState)

	if code == "" {
		h.redirectWithError(c, loginErrInvalidState)
		return
	}

	token, profile, err := h.service.Complete(c.Request.Context(), expectedState, gotState, code)
	if err != nil {
		h.redirectWithError(c, loginErrorCode(err))
		return
	}

	userPayload, err := middleware.EncodeUserCookie(*profile)
	if err != nil {
		h.redirectWithError(c, loginErrServer)
		return
	}

	sessionSeconds := int(h.cfg.SessionTTL.Seconds())

	c.SetCookie(middleware.CookieAccessToken, token, sessionSeconds, "/", "", h.cfg.SecureCookies, true)
	c.SetCookie(middleware.CookieUser, userPayload, sessionSeconds, "/", "", h.cfg.SecureCookies, false)

	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendURL+"?login=success")
}

// GetUser handles GET /api/auth/farcaster/user
// Reports the authentication state resolved from the profile cookie.
// Always 200; missing or malformed cookies read as unauthenticated.
func (h *AuthHandler) GetUser(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	profile, ok := identity.Profile()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": middleware.UserCookie{
			FID:          profile.FID,
			Username:     profile.Username,
			DisplayName:  profile.DisplayName,
			ProfileImage: profile.ProfileImage,
		},
	})
}

// Logout handles GET /api/auth/farcaster/logout
// Clears every login cookie and redirects to the frontend.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context(), middleware.GetIdentity(c))

	h.clearCookie(c, middleware.CookieAccessToken)
	h.clearCookie(c, middleware.CookieUser)
	h.clearCookie(c, middleware.CookieAuthState)

	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendURL)
}

// RegisterAuthRoutes registers the login flow routes on the given group.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth/farcaster")
	auth.GET("", h.BeginLogin)
	auth.GET("/callback", h.CompleteLogin)
	auth.GET("/user", h.GetUser)
	auth.GET("/logout", h.Logout)
}

func (h *AuthHandler) clearCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", h.cfg.SecureCookies, true)
}

func (h *AuthHandler) redirectWithError(c *gin.Context, code string) {
	logger := logging.FromContext(c.Request.Context())
	logger.Warn("login flow failed", "error_code", code)

	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendURL+"?error="+code)
}

// loginErrorCode maps login flow errors to redirect error codes.
func loginErrorCode(err error) string {
	switch {
	case errors.Is(err, app.ErrStateMismatch):
		return loginErrInvalidState
	case errors.Is(err, app.ErrTokenExchange):
		return loginErrTokenExchange
	case errors.Is(err, app.ErrProfileFetch):
		return loginErrProfileFetch
	default:
		return loginErrServer
	}
}
