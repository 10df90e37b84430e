package weather

import (
	"context"
	"time"
)

// Provider abstracts the weather data source (e.g. OpenWeatherMap).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, q Query) (ProviderResponse, error)
}

// LocationResolver turns coordinates into a named place. Implementations never
// fail; they return a placeholder Location instead.
type LocationResolver interface {
	Reverse(ctx context.Context, lat, lng float64) Location
}

// PhraseGenerator produces the localized mood phrase for a temperature.
type PhraseGenerator interface {
	Generate(ctx context.Context, temp int, countryCode string) string
}

// Store is the contract the in-memory store (and any future persistent store) must satisfy.
type Store interface {
	SaveReport(key string, report Report)
	GetLatest(key string) (Report, error)
	GetRange(key string, from, to time.Time) ([]Report, error)
}
