package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
	"github.com/sony/gobreaker"
)

const (
	// DefaultOpenWeatherURL is the public OpenWeatherMap API root.
	DefaultOpenWeatherURL = "https://api.openweathermap.org"

	currentPath  = "/data/2.5/weather"
	forecastPath = "/data/2.5/forecast"
)

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
// Each fetch pulls the current conditions and the 5 day / 3 hour forecast.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// Option customizes an OpenWeatherProvider.
type Option func(*OpenWeatherProvider)

// WithBaseURL points the provider at another API root.
func WithBaseURL(u string) Option {
	return func(p *OpenWeatherProvider) {
		if u != "" {
			p.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithBackoff overrides the retry schedule.
func WithBackoff(b BackoffConfig) Option {
	return func(p *OpenWeatherProvider) {
		p.httpCfg.Backoff = b
	}
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, opts ...Option) *OpenWeatherProvider {
	p := &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: DefaultOpenWeatherURL,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: DefaultBackoff,
		},
		circuit: newCircuitBreaker("openweather"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Fetch requests both payloads concurrently. A provider-side rejection (bad
// key, unknown city) is reported in ProviderResponse.Error; transport failures
// are returned as errors.
func (p *OpenWeatherProvider) Fetch(ctx context.Context, q weather.Query) (weather.ProviderResponse, error) {
	if p.apiKey == "" {
		return weather.ProviderResponse{}, fmt.Errorf("openweather api key is not configured")
	}

	var (
		wg          sync.WaitGroup
		current     weather.RawCurrentConditions
		forecast    weather.RawForecast
		currentErr  error
		forecastErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		currentErr = p.get(ctx, currentPath, q, &current)
	}()
	go func() {
		defer wg.Done()
		forecastErr = p.get(ctx, forecastPath, q, &forecast)
	}()
	wg.Wait()

	for _, err := range []error{currentErr, forecastErr} {
		if err == nil {
			continue
		}
		if msg, ok := providerMessage(err); ok {
			return weather.ProviderResponse{Error: msg}, nil
		}
		return weather.ProviderResponse{}, err
	}

	return weather.ProviderResponse{Current: current, Forecast: forecast}, nil
}

func (p *OpenWeatherProvider) get(ctx context.Context, path string, q weather.Query, out any) error {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")
		values.Set("lang", "pt_br")

		if q.HasCoordinates() {
			values.Set("lat", strconv.FormatFloat(*q.Lat, 'f', -1, 64))
			values.Set("lon", strconv.FormatFloat(*q.Lng, 'f', -1, 64))
		} else {
			values.Set("q", strings.TrimSpace(q.City))
		}

		u := fmt.Sprintf("%s%s?%s", p.baseURL, path, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", weather.ErrMalformedProviderResponse, path, err)
	}
	return nil
}

// providerMessage extracts the message OpenWeatherMap returns with client
// errors, e.g. {"cod":"404","message":"city not found"}.
func providerMessage(err error) (string, bool) {
	var se *statusError
	if !errors.As(err, &se) {
		return "", false
	}

	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal([]byte(se.Body), &body) == nil && body.Message != "" {
		return body.Message, true
	}
	return http.StatusText(se.Code), true
}
