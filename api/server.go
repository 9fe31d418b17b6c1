// ABOUTME: Huma API server configuration and setup for the HTTP shell
// ABOUTME: Serves the liveness route and the instructions preview with OpenAPI docs

package api

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"ukazaniya-bot/api/handlers"
	"ukazaniya-bot/api/middleware"
	"ukazaniya-bot/core/interfaces"
	"ukazaniya-bot/pkg/featureflags"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window

	// Flags toggles optional routes; nil enables everything
	Flags featureflags.Manager
}

// NewAPI creates a Huma API on a chi router with CORS and the configured middleware
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig("Ukazaniya Bot API", "1.0.0")
	config.Info.Description = "Liturgical instructions rendered the way the Telegram bot sends them"
	if !enabled(cfg.Flags, featureflags.APIDocs) {
		config.OpenAPIPath = ""
		config.DocsPath = ""
		config.SchemasPath = ""
	}

	api := humachi.New(router, config)

	return api, router
}

// RegisterRoutes registers the routes of the HTTP shell enabled by flags
func RegisterRoutes(api huma.API, service interfaces.InstructionsService, flags featureflags.Manager) {
	handlers.RegisterHealth(api)

	if enabled(flags, featureflags.PreviewAPI) {
		handlers.NewInstructionsHandler(service).RegisterRoutes(api)
	}
}

func enabled(flags featureflags.Manager, flag featureflags.FeatureFlag) bool {
	return flags == nil || flags.IsEnabled(context.Background(), flag)
}
