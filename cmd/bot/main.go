// ABOUTME: Main entry point for the liturgical instructions bot
// ABOUTME: Wires the pipeline, starts Telegram polling and the HTTP shell

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ukazaniya-bot/api"
	"ukazaniya-bot/api/bot"
	"ukazaniya-bot/api/middleware"
	"ukazaniya-bot/core/domain"
	"ukazaniya-bot/core/extractor"
	"ukazaniya-bot/core/fetcher"
	"ukazaniya-bot/core/instructions"
	"ukazaniya-bot/core/interfaces"
	"ukazaniya-bot/core/renderer"
	collyhttp "ukazaniya-bot/infrastructure/http/colly"
	stdhttp "ukazaniya-bot/infrastructure/http/standard"
	logruslogger "ukazaniya-bot/infrastructure/logger/logrus"
	"ukazaniya-bot/infrastructure/telegram"
	"ukazaniya-bot/pkg/config"
	"ukazaniya-bot/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logruslogger.NewLogger(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Info("Starting instructions bot", map[string]interface{}{
		"port":          cfg.Server.Port,
		"base_url":      cfg.Source.BaseURL,
		"fetch_backend": cfg.Source.Backend,
		"bot_disabled":  cfg.Bot.Disabled,
		"full_default":  cfg.Bot.FullMessageDefault,
	})

	deps := interfaces.Dependencies{
		HTTPClient: newHTTPClient(cfg, logger),
		Logger:     logger,
	}

	service := instructions.NewService(
		fetcher.NewFetcher(cfg.Source.BaseURL, deps),
		extractor.NewExtractor(),
		renderer.NewRenderer(),
		deps,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	botDone := make(chan struct{})
	if cfg.Bot.Disabled {
		close(botDone)
	} else {
		go func() {
			defer close(botDone)
			runBot(ctx, cfg, service, deps, logger)
		}()
	}

	flags := featureflags.NewEnvManager("FEATURE_", featureflags.Defaults)
	logger.Debug("Feature flags", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
		Flags:      flags,
	})
	api.RegisterRoutes(humaAPI, service, flags)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.FetchTimeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	select {
	case <-botDone:
	case <-shutdownCtx.Done():
		logger.Warn("Bot did not stop in time", nil)
	}

	logger.Info("Stopped", nil)
}

// newHTTPClient builds the page transport selected by FETCH_BACKEND
func newHTTPClient(cfg *config.Config, logger *logruslogger.Logger) interfaces.HTTPClient {
	if cfg.Source.Backend == config.BackendColly {
		return collyhttp.NewCollyHTTPClient(cfg.FetchTimeout())
	}

	return stdhttp.NewStandardHTTPClientWithTransport(
		cfg.FetchTimeout(),
		middleware.NewLoggingRoundTripper(http.DefaultTransport, logger),
	)
}

// runBot connects to Telegram and serves updates until ctx is canceled.
// A connection failure is logged and leaves the HTTP shell running.
func runBot(ctx context.Context, cfg *config.Config, service interfaces.InstructionsService, deps interfaces.Dependencies, logger *logruslogger.Logger) {
	if err := tgbotapi.SetLogger(logger.Logrus().WithField("component", "telegram")); err != nil {
		logger.Warn("Failed to set telegram logger", map[string]interface{}{
			"error": err.Error(),
		})
	}

	client, err := telegram.NewClient(telegram.Options{
		Token:       cfg.Bot.Token,
		APIEndpoint: cfg.Bot.APIEndpoint,
		PollTimeout: cfg.Bot.PollTimeout,
		SendRate:    cfg.Bot.SendRate,
	}, deps)
	if err != nil {
		logger.Error("Failed to start bot", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	defaultMode := domain.ModeShort
	if cfg.Bot.FullMessageDefault {
		defaultMode = domain.ModeFull
	}

	adapter := bot.NewAdapter(service, client, defaultMode, deps)

	if err := client.Run(ctx, adapter); err != nil {
		logger.Error("Bot stopped with error", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
