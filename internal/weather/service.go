package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service orchestrates fetching from the provider, deriving the dashboard and
// persisting reports.
type Service struct {
	provider  Provider
	resolver  LocationResolver
	phrases   PhraseGenerator
	store     Store
	formatter Formatter
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new Service. resolver and phrases may be nil.
func NewService(
	provider Provider,
	resolver LocationResolver,
	phrases PhraseGenerator,
	store Store,
	formatter Formatter,
	logger *slog.Logger,
) *Service {
	return &Service{
		provider:  provider,
		resolver:  resolver,
		phrases:   phrases,
		store:     store,
		formatter: formatter,
		logger:    logger.With("component", "weather-service"),
		now:       time.Now,
	}
}

// FetchDashboard fetches fresh provider data for the query, derives the
// dashboard, resolves the place name and stores the resulting report.
func (s *Service) FetchDashboard(ctx context.Context, q Query) (Report, error) {
	if err := q.Validate(); err != nil {
		return Report{}, err
	}
	if s.provider == nil {
		return Report{}, fmt.Errorf("no weather provider configured")
	}

	resp, err := s.provider.Fetch(ctx, q)
	if err != nil {
		s.logger.Error("provider fetch failed",
			"provider", s.provider.Name(),
			"query", q.Key(),
			"error", err,
		)
		return Report{}, fmt.Errorf("failed to fetch weather: %w", err)
	}

	dashboard, err := Build(resp, s.formatter)
	if err != nil {
		s.logger.Warn("provider response rejected", "query", q.Key(), "error", err)
		return Report{}, err
	}

	loc := s.resolveLocation(ctx, q, resp.Current)

	var phrase string
	if s.phrases != nil {
		phrase = s.phrases.Generate(ctx, dashboard.Current.Temp, loc.CountryCode)
	}

	now := s.now()
	report := Report{
		Location:  loc,
		Dashboard: dashboard,
		Phrase:    phrase,
		IsDayTime: dashboard.Current.IsDayTime(now),
		FetchedAt: now.UTC(),
	}

	if s.store != nil {
		s.store.SaveReport(q.Key(), report)
	}

	s.logger.Debug("dashboard built",
		"query", q.Key(),
		"city", loc.City,
		"daily", len(dashboard.Daily),
		"hourly", len(dashboard.Hourly),
	)

	return report, nil
}

// FetchAndStore refreshes the stored report for a query, discarding the result.
func (s *Service) FetchAndStore(ctx context.Context, q Query) error {
	_, err := s.FetchDashboard(ctx, q)
	return err
}

// resolveLocation names the place. Coordinate queries are reverse geocoded
// directly; city queries are reverse geocoded from the payload coordinates and
// fall back to the payload's own name and country.
func (s *Service) resolveLocation(ctx context.Context, q Query, current RawCurrentConditions) Location {
	fallback := Location{
		City: current.Name,
		Lat:  current.Coord.Lat,
		Lng:  current.Coord.Lon,
	}
	if current.Sys != nil {
		fallback.CountryCode = current.Sys.Country
	}
	if fallback.City == "" {
		fallback.City = UnknownCity
	}

	if s.resolver == nil {
		return fallback
	}

	if q.HasCoordinates() {
		return s.resolver.Reverse(ctx, *q.Lat, *q.Lng)
	}

	loc := s.resolver.Reverse(ctx, current.Coord.Lat, current.Coord.Lon)
	if !loc.Resolved() {
		return fallback
	}
	return loc
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(q Query) (Report, error) {
	if err := q.Validate(); err != nil {
		return Report{}, err
	}
	return s.store.GetLatest(q.Key())
}

// GetRange delegates to the underlying store.
func (s *Service) GetRange(q Query, from, to time.Time) ([]Report, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.store.GetRange(q.Key(), from, to)
}
