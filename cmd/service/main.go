// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/clients"
	"github.com/fiveminutevibe/vibe-service/internal/adapters/clients/acl"
	"github.com/fiveminutevibe/vibe-service/internal/adapters/flags"
	"github.com/fiveminutevibe/vibe-service/internal/adapters/http"
	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/handlers"
	"github.com/fiveminutevibe/vibe-service/internal/adapters/storage"
	"github.com/fiveminutevibe/vibe-service/internal/app"
	"github.com/fiveminutevibe/vibe-service/internal/platform/config"
	"github.com/fiveminutevibe/vibe-service/internal/platform/logging"
	"github.com/fiveminutevibe/vibe-service/internal/platform/telemetry"
	"github.com/fiveminutevibe/vibe-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Open journal storage
	journalStore, err := storage.NewBoltJournal(storage.BoltJournalConfig{
		Path:   cfg.Journal.Path,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("opening journal store: %w", err)
	}

	defer func() {
		if closeErr := journalStore.Close(); closeErr != nil {
			logger.Error("journal store close error", slog.Any("error", closeErr))
		}
	}()

	if err := healthRegistry.Register(journalStore); err != nil {
		return fmt.Errorf("registering journal store health check: %w", err)
	}

	// 7. Feature flags come straight from configuration
	featureFlags := flags.NewStatic(cfg.Flags)

	// 8. Quote generation tier (optional)
	var generator ports.QuoteGenerator
	if cfg.OpenAI.Enabled {
		generator = acl.NewOpenAIGenerator(acl.OpenAIGeneratorConfig{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Logger:  logger,
		})
	} else {
		logger.Info("quote generation disabled, serving fallback quotes only")
	}

	// 9. Application services
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Generator: generator,
		Cache:     app.NewQuoteCache(),
		Flags:     featureFlags,
		Logger:    logger,
	})
	journalService := app.NewJournalService(app.JournalServiceConfig{
		Repository: journalStore,
		Logger:     logger,
	})
	dailyService := app.NewDailyService(quoteService, journalService)

	// 10. Handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	routerCfg := http.RouterConfig{
		Logger:         logger,
		AppConfig:      &cfg.App,
		HealthHandler:  handlers.NewHealthHandler(healthRegistry, buildInfo),
		QuoteHandler:   handlers.NewQuoteHandler(quoteService),
		JournalHandler: handlers.NewJournalHandler(journalService),
		SIWEHandler:    handlers.NewSIWEHandler(),
		DailyHandler:   handlers.NewDailyHandler(dailyService),
		Timeout:        http.DefaultRequestTimeout,
	}

	// 11. Farcaster integration (optional); its routes answer 503 when off
	if cfg.Farcaster.Enabled {
		warpcastClient, clientErr := clients.New(&clients.Config{
			BaseURL:     cfg.Farcaster.APIBaseURL,
			ServiceName: "warpcast",
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			Logger:      logger,
		})
		if clientErr != nil {
			return fmt.Errorf("creating warpcast HTTP client: %w", clientErr)
		}

		warpcast := acl.NewWarpcast(acl.WarpcastConfig{
			ClientID:     cfg.Farcaster.ClientID,
			ClientSecret: cfg.Farcaster.ClientSecret,
			RedirectURL:  cfg.Farcaster.RedirectURL,
			AuthorizeURL: cfg.Farcaster.AuthorizeURL,
			APIBaseURL:   cfg.Farcaster.APIBaseURL,
			Client:       warpcastClient,
			Logger:       logger,
		})

		authService := app.NewAuthService(app.AuthServiceConfig{
			Provider: warpcast,
			Logger:   logger,
		})
		socialService := app.NewSocialService(app.SocialServiceConfig{
			Publisher: warpcast,
			Logger:    logger,
		})

		routerCfg.AuthHandler = handlers.NewAuthHandler(authService, &cfg.Farcaster)
		routerCfg.SocialHandler = handlers.NewSocialHandler(socialService)
	} else {
		logger.Info("farcaster integration disabled")
	}

	// 12. Create HTTP server and mount routes
	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), routerCfg)

	// 13. Start server (non-blocking)
	serverErr := server.Start()

	// 14. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
