package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://api.openweathermap.org", cfg.OpenWeatherURL)
	assert.Equal(t, "https://translate.googleapis.com", cfg.TranslateURL)
	assert.Equal(t, time.Hour, cfg.TranslateCacheTTL)
	assert.Equal(t, 5.0, cfg.TranslateRPS)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 15*time.Minute, cfg.FetchInterval)
	assert.Equal(t, 96, cfg.StoreMaxHistory)
	assert.Equal(t, 24*time.Hour, cfg.StoreMaxAge)
	assert.Equal(t, "America/Sao_Paulo", cfg.DisplayTimezone)
	assert.Empty(t, cfg.Locations)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("FETCH_INTERVAL", "5m")
	t.Setenv("STORE_MAX_HISTORY", "10")
	t.Setenv("TRANSLATE_RPS", "0.5")
	t.Setenv("WEATHER_LOCATION_CITY", "São Paulo, Lisboa")
	t.Setenv("WEATHER_LOCATION_COUNTRY", "BR,PT")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "secret", cfg.OpenWeatherAPIKey)
	assert.Equal(t, 5*time.Minute, cfg.FetchInterval)
	assert.Equal(t, 10, cfg.StoreMaxHistory)
	assert.Equal(t, 0.5, cfg.TranslateRPS)
	assert.Equal(t, []weather.Query{{City: "São Paulo,BR"}, {City: "Lisboa,PT"}}, cfg.Locations)
	assert.True(t, cfg.NewLogger().Enabled(context.Background(), slog.LevelDebug))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "FETCH_INTERVAL", "soon"},
		{"zero interval", "FETCH_INTERVAL", "0s"},
		{"bad max age", "STORE_MAX_AGE", "forever"},
		{"bad timeout", "HTTP_TIMEOUT", "10"},
		{"unknown timezone", "DISPLAY_TIMEZONE", "Mars/Olympus_Mons"},
		{"mismatched locations", "WEATHER_LOCATION_CITY", "Recife,Natal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if tt.key == "WEATHER_LOCATION_CITY" {
				t.Setenv("WEATHER_LOCATION_COUNTRY", "BR")
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLocations(t *testing.T) {
	locs, err := parseLocations("Recife", "")
	require.NoError(t, err)
	assert.Equal(t, []weather.Query{{City: "Recife"}}, locs)

	_, err = parseLocations("Recife,", "BR,BR")
	assert.Error(t, err)
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		logger := (&AppConfig{LogLevel: tt.level, LogFormat: "json"}).NewLogger()
		assert.True(t, logger.Enabled(context.Background(), tt.want), tt.level)
		assert.False(t, logger.Enabled(context.Background(), tt.want-1), tt.level)
	}
}
