package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/i474232898/weather-emissions-dashboard/internal/api/http"
	"github.com/i474232898/weather-emissions-dashboard/internal/cache"
	"github.com/i474232898/weather-emissions-dashboard/internal/config"
	"github.com/i474232898/weather-emissions-dashboard/internal/emissions"
	"github.com/i474232898/weather-emissions-dashboard/internal/geo"
	"github.com/i474232898/weather-emissions-dashboard/internal/phrase"
	"github.com/i474232898/weather-emissions-dashboard/internal/scheduler"
	"github.com/i474232898/weather-emissions-dashboard/internal/store"
	"github.com/i474232898/weather-emissions-dashboard/internal/translate"
	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
	"github.com/i474232898/weather-emissions-dashboard/internal/weather/providers"
)

const appName = "weather-dashboard"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	formatter, err := weather.NewFormatterFor(cfg.DisplayTimezone)
	if err != nil {
		logger.Error("invalid display timezone", "zone", cfg.DisplayTimezone, "error", err)
		os.Exit(1)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Provider with resilience (backoff + circuit breaker).
	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, providers.WithBaseURL(cfg.OpenWeatherURL))
	resolver := geo.NewResolver(httpClient, cfg.OpenWeatherAPIKey, cfg.OpenWeatherURL, cfg.GeocoderAPIKey, logger)

	translations := cache.NewTTL[string, string]()
	translator := translate.NewCached(
		translate.NewClient(cfg.TranslateURL, cfg.HTTPTimeout, cfg.TranslateRPS),
		translations,
		cfg.TranslateCacheTTL,
		logger,
	)
	phrases := phrase.NewGenerator(translator, logger)

	service := weather.NewService(provider, resolver, phrases, memStore, formatter, logger)

	// Scheduler that periodically prefetches locations and sweeps the translation cache.
	sched := scheduler.New(cfg.Locations, cfg.FetchInterval, service, logger, translations)
	if err := sched.Start(); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	app := httpapi.NewApp(appName, logger)
	httpapi.RegisterRoutes(app, httpapi.Deps{
		Weather:    service,
		Resolver:   resolver,
		Translator: translator,
		Phrases:    phrases,
		Estimator:  emissions.NewEstimator(),
	})

	// Start server with graceful shutdown
	go func() {
		logger.Info("listening", "addr", cfg.Addr())
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Error("fiber server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}
