package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCookieRequest(cookies map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for name, value := range cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: url.QueryEscape(value)})
	}

	return req
}

func TestExtractIdentity(t *testing.T) {
	tests := []struct {
		name          string
		cookies       map[string]string
		authenticated bool
		username      string
	}{
		{
			name:          "no cookie is anonymous",
			cookies:       nil,
			authenticated: false,
		},
		{
			name: "valid cookie resolves profile",
			cookies: map[string]string{
				CookieUser: `{"fid":42,"username":"alice","displayName":"Alice","profileImage":"https://img.example/a.png"}`,
			},
			authenticated: true,
			username:      "alice",
		},
		{
			name: "malformed cookie is anonymous",
			cookies: map[string]string{
				CookieUser: "not-json",
			},
			authenticated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = newCookieRequest(tt.cookies)

			identity := ExtractIdentity(c)

			assert.Equal(t, tt.authenticated, identity.IsAuthenticated())
			if tt.authenticated {
				profile, ok := identity.Profile()
				require.True(t, ok)
				assert.Equal(t, tt.username, profile.Username)
			}
		})
	}
}

func TestGetIdentityCachesResolution(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = newCookieRequest(map[string]string{
		CookieUser: `{"fid":7,"username":"bob","displayName":"Bob"}`,
	})

	first := GetIdentity(c)
	require.True(t, first.IsAuthenticated())

	// Drop the cookie; the cached identity must survive.
	c.Request = newCookieRequest(nil)

	second := GetIdentity(c)
	assert.True(t, second.IsAuthenticated())
}

func TestEncodeUserCookieRoundTrip(t *testing.T) {
	encoded, err := EncodeUserCookie(domain.Profile{
		FID:          99,
		Username:     "carol",
		DisplayName:  "Carol",
		ProfileImage: "https://img.example/c.png",
	})
	require.NoError(t, err)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = newCookieRequest(map[string]string{CookieUser: encoded})

	identity := ExtractIdentity(c)
	require.True(t, identity.IsAuthenticated())

	profile, _ := identity.Profile()
	assert.Equal(t, int64(99), profile.FID)
	assert.Equal(t, "carol", profile.Username)
	assert.Equal(t, "https://img.example/c.png", profile.ProfileImage)
}

func TestAccessToken(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = newCookieRequest(map[string]string{CookieAccessToken: "tok-123"})
	assert.Equal(t, "tok-123", AccessToken(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = newCookieRequest(nil)
	assert.Empty(t, AccessToken(c))
}

func TestRequireAuth(t *testing.T) {
	router := gin.New()
	router.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("rejects without token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})

	t.Run("passes with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "tok"})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
