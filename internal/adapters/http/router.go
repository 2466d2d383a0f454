package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/dto"
	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/handlers"
	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/middleware"
	"github.com/fiveminutevibe/vibe-service/internal/platform/config"
	"github.com/fiveminutevibe/vibe-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles the classic and daily quote endpoints.
	QuoteHandler *handlers.QuoteHandler

	// AuthHandler handles the login flow. Nil when the identity
	// provider is disabled; its routes then answer 503.
	AuthHandler *handlers.AuthHandler

	// SocialHandler handles cast publishing. Nil when the identity
	// provider is disabled; its routes then answer 503.
	SocialHandler *handlers.SocialHandler

	// JournalHandler handles journal persistence and share links.
	JournalHandler *handlers.JournalHandler

	// SIWEHandler handles the wallet sign-in echo endpoint.
	SIWEHandler *handlers.SIWEHandler

	// DailyHandler handles the combined daily digest endpoint.
	DailyHandler *handlers.DailyHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied per-route or globally)
//
// Route groups:
//   - /-/ (internal): Health endpoints, no auth required
//   - /api/ (public API): Business endpoints; paths match the frontend's
//     existing fetch calls, so there is no version segment.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Register health endpoints (no auth, no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	setupAPIRoutes(api, cfg)
}

// setupAPIRoutes registers business API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	}

	if cfg.JournalHandler != nil {
		cfg.JournalHandler.RegisterJournalRoutes(rg)
	}

	if cfg.SIWEHandler != nil {
		cfg.SIWEHandler.RegisterSIWERoutes(rg)
	}

	if cfg.DailyHandler != nil {
		cfg.DailyHandler.RegisterDailyRoutes(rg)
	}

	if cfg.AuthHandler != nil {
		cfg.AuthHandler.RegisterAuthRoutes(rg)
	} else {
		disabled := featureDisabled("farcaster login is not configured")
		auth := rg.Group("/auth/farcaster")
		auth.GET("", disabled)
		auth.GET("/callback", disabled)
		auth.GET("/user", disabled)
		auth.GET("/logout", disabled)
	}

	if cfg.SocialHandler != nil {
		cfg.SocialHandler.RegisterSocialRoutes(rg)
	} else {
		rg.POST("/farcaster/post", featureDisabled("farcaster posting is not configured"))
	}
}

// featureDisabled answers 503 for routes whose backing integration is
// switched off in configuration.
func featureDisabled(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		dto.RespondWithErrorCode(c, dto.ErrorCodeUnavailable, message)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
