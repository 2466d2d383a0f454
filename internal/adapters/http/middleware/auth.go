package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/dto"
	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

// Cookie names shared across the login flow. The names are part of the
// public contract with the frontend and must not change.
const (
	// CookieAuthState holds the CSRF state nonce between the authorize
	// redirect and the provider callback. HTTP-only, short-lived.
	CookieAuthState = "farcaster_auth_state"

	// CookieAccessToken holds the provider access token. HTTP-only so
	// scripts never see it.
	CookieAccessToken = "farcaster_token"

	// CookieUser holds the profile as client-readable JSON so the
	// frontend can render it without a round trip.
	CookieUser = "farcaster_user"
)

const (
	// ContextKeyIdentity is the gin context key for the resolved identity.
	ContextKeyIdentity = "identity"
)

// UserCookie is the JSON payload of the client-readable profile cookie.
type UserCookie struct {
	FID          int64  `json:"fid"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// EncodeUserCookie serializes a profile into the cookie payload.
func EncodeUserCookie(p domain.Profile) (string, error) {
	raw, err := json.Marshal(UserCookie{
		FID:          p.FID,
		Username:     p.Username,
		DisplayName:  p.DisplayName,
		ProfileImage: p.ProfileImage,
	})
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// ExtractIdentity resolves the request identity from the profile cookie.
// A missing or malformed cookie yields the anonymous identity; the
// decision to reject lives in RequireAuth, not here.
func ExtractIdentity(c *gin.Context) domain.Identity {
	raw, err := c.Cookie(CookieUser)
	if err != nil || raw == "" {
		return domain.Anonymous()
	}

	var payload UserCookie
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.Anonymous()
	}

	return domain.Authenticated(domain.Profile{
		FID:          payload.FID,
		Username:     payload.Username,
		DisplayName:  payload.DisplayName,
		ProfileImage: payload.ProfileImage,
	})
}

// GetIdentity returns the identity stored in the gin context, resolving
// and caching it on first access.
func GetIdentity(c *gin.Context) domain.Identity {
	if stored, exists := c.Get(ContextKeyIdentity); exists {
		if identity, ok := stored.(domain.Identity); ok {
			return identity
		}
	}

	identity := ExtractIdentity(c)
	c.Set(ContextKeyIdentity, identity)

	return identity
}

// AccessToken returns the provider access token from its cookie, or
// empty when the request carries none.
func AccessToken(c *gin.Context) string {
	token, err := c.Cookie(CookieAccessToken)
	if err != nil {
		return ""
	}

	return token
}

// RequireAuth aborts with 401 when the request carries no access token.
// Handlers behind it can assume AccessToken returns a non-empty value.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if AccessToken(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.ErrorCodeUnauthorized,
				"authentication required",
			))

			return
		}

		c.Next()
	}
}
