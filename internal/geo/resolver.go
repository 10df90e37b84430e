// Package geo turns coordinates into place names for the dashboard header.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"
)

const reversePath = "/geo/1.0/reverse"

var (
	errNoMatch  = errors.New("no place at coordinates")
	errUpstream = errors.New("reverse geocoding failed")
)

// reverseFunc is the Google geocoder entry point, swapped out in tests.
type reverseFunc func(geocoder.Location) ([]geocoder.Address, error)

// Resolver reverse geocodes with OpenWeatherMap first and the Google geocoder
// second. It never fails: when both lookups miss it returns a placeholder.
type Resolver struct {
	client  *http.Client
	apiKey  string
	baseURL string
	circuit *gobreaker.CircuitBreaker
	google  reverseFunc
	logger  *slog.Logger
}

// NewResolver creates a Resolver. googleKey enables the Google fallback.
func NewResolver(client *http.Client, apiKey, baseURL, googleKey string, logger *slog.Logger) *Resolver {
	r := &Resolver{
		client:  client,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openweather-geo",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, errNoMatch)
			},
		}),
		logger: logger.With("component", "geo-resolver"),
	}
	if googleKey != "" {
		geocoder.ApiKey = googleKey
		r.google = geocoder.GeocodingReverse
	}
	return r
}

// Placeholder is the location reported when nothing is known about the coordinates.
func Placeholder(lat, lng float64) weather.Location {
	return weather.Location{City: weather.UnknownCity, Lat: lat, Lng: lng}
}

// Reverse implements weather.LocationResolver.
func (r *Resolver) Reverse(ctx context.Context, lat, lng float64) weather.Location {
	loc, err := r.openWeather(ctx, lat, lng)
	if err == nil {
		return loc
	}
	r.logger.Warn("openweather reverse geocoding missed", "lat", lat, "lng", lng, "error", err)

	if r.google != nil {
		loc, err = r.googleReverse(lat, lng)
		if err == nil {
			return loc
		}
		r.logger.Warn("google reverse geocoding missed", "lat", lat, "lng", lng, "error", err)
	}

	return Placeholder(lat, lng)
}

func (r *Resolver) openWeather(ctx context.Context, lat, lng float64) (weather.Location, error) {
	if r.apiKey == "" {
		return weather.Location{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	values.Set("limit", "1")
	values.Set("appid", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+reversePath+"?"+values.Encode(), nil)
	if err != nil {
		return weather.Location{}, err
	}

	result, err := r.circuit.Execute(func() (interface{}, error) {
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: status %d", errUpstream, resp.StatusCode)
		}

		var places []struct {
			Name    string  `json:"name"`
			State   string  `json:"state"`
			Country string  `json:"country"`
			Lat     float64 `json:"lat"`
			Lon     float64 `json:"lon"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
			return nil, err
		}
		if len(places) == 0 || places[0].Name == "" {
			return nil, errNoMatch
		}

		return weather.Location{
			City:        places[0].Name,
			State:       places[0].State,
			CountryCode: places[0].Country,
			Lat:         lat,
			Lng:         lng,
		}, nil
	})
	if err != nil {
		return weather.Location{}, err
	}
	return result.(weather.Location), nil
}

func (r *Resolver) googleReverse(lat, lng float64) (weather.Location, error) {
	addresses, err := r.google(geocoder.Location{Latitude: lat, Longitude: lng})
	if err != nil {
		return weather.Location{}, err
	}

	for _, a := range addresses {
		if a.City == "" {
			continue
		}
		loc := weather.Location{City: a.City, State: a.State, Lat: lat, Lng: lng}
		// The geocoder reports country names; only two-letter values are codes.
		if len(a.Country) == 2 {
			loc.CountryCode = strings.ToUpper(a.Country)
		}
		return loc, nil
	}
	return weather.Location{}, errNoMatch
}

var _ weather.LocationResolver = (*Resolver)(nil)
