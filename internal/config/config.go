package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
)

type AppConfig struct {
	Port string

	OpenWeatherAPIKey string
	OpenWeatherURL    string
	GeocoderAPIKey    string // Google key for the fallback reverse geocoder, optional

	TranslateURL      string
	TranslateCacheTTL time.Duration
	TranslateRPS      float64

	// HTTPTimeout bounds every outbound request.
	HTTPTimeout time.Duration

	// FetchInterval controls how often we fetch data for each location.
	FetchInterval time.Duration

	// Locations to prefetch.
	Locations []weather.Query

	// In-memory store retention.
	StoreMaxHistory int           // max number of reports per location (0 = unlimited)
	StoreMaxAge     time.Duration // max age of reports (0 = unlimited)

	DisplayTimezone string

	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("openweather_api_key", "")
	v.SetDefault("openweather_url", "https://api.openweathermap.org")
	v.SetDefault("geocoder_api_key", "")
	v.SetDefault("translate_url", "https://translate.googleapis.com")
	v.SetDefault("translate_cache_ttl", "1h")
	v.SetDefault("translate_rps", 5)
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("fetch_interval", "15m")
	v.SetDefault("store_max_history", 96) // roughly 24h at 15-minute intervals
	v.SetDefault("store_max_age", "24h")
	v.SetDefault("display_timezone", weather.DefaultDisplayTimezone)
	v.SetDefault("weather_location_city", "")
	v.SetDefault("weather_location_country", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

// Load reads configuration from a .env file, an optional config.yaml and the
// environment, in increasing order of precedence.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:              v.GetString("port"),
		OpenWeatherAPIKey: v.GetString("openweather_api_key"),
		OpenWeatherURL:    v.GetString("openweather_url"),
		GeocoderAPIKey:    v.GetString("geocoder_api_key"),
		TranslateURL:      v.GetString("translate_url"),
		TranslateRPS:      v.GetFloat64("translate_rps"),
		StoreMaxHistory:   v.GetInt("store_max_history"),
		DisplayTimezone:   v.GetString("display_timezone"),
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"translate_cache_ttl", &cfg.TranslateCacheTTL},
		{"http_timeout", &cfg.HTTPTimeout},
		{"fetch_interval", &cfg.FetchInterval},
		{"store_max_age", &cfg.StoreMaxAge},
	}
	for _, d := range durations {
		parsed, err := time.ParseDuration(v.GetString(d.key))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", strings.ToUpper(d.key), err)
		}
		*d.dst = parsed
	}

	if cfg.FetchInterval <= 0 {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: must be positive")
	}
	if cfg.TranslateRPS <= 0 {
		return nil, fmt.Errorf("invalid TRANSLATE_RPS: must be positive")
	}
	if _, err := time.LoadLocation(cfg.DisplayTimezone); err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE: %w", err)
	}

	locs, err := parseLocations(v.GetString("weather_location_city"), v.GetString("weather_location_country"))
	if err != nil {
		return nil, err
	}
	cfg.Locations = locs

	return cfg, nil
}

// parseLocations pairs comma separated cities and countries into queries of
// the form "city,country".
func parseLocations(city, country string) ([]weather.Query, error) {
	if strings.TrimSpace(city) == "" && strings.TrimSpace(country) == "" {
		return nil, nil
	}
	cities := strings.Split(city, ",")
	countries := strings.Split(country, ",")
	if len(cities) != len(countries) {
		return nil, fmt.Errorf("number of cities and countries must be the same")
	}

	locs := make([]weather.Query, 0, len(cities))
	for i := range cities {
		c := strings.TrimSpace(cities[i])
		if c == "" {
			return nil, fmt.Errorf("empty city at position %d", i)
		}
		if cc := strings.TrimSpace(countries[i]); cc != "" {
			c = c + "," + cc
		}
		locs = append(locs, weather.Query{City: c})
	}
	return locs, nil
}

// Addr returns the listen address in the format ":port".
func (c *AppConfig) Addr() string {
	return ":" + c.Port
}

// NewLogger creates a slog.Logger from the configured level and format.
func (c *AppConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(c.LogFormat) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
