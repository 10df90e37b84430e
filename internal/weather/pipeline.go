package weather

import (
	"fmt"

	"github.com/i474232898/weather-emissions-dashboard/internal/common"
)

// Build derives the full dashboard from one provider response. It does no I/O
// and returns identical output for identical input.
func Build(resp ProviderResponse, f Formatter) (Dashboard, error) {
	if resp.Error != "" {
		if common.HasAny(resp.Error, "city not found", "nothing to geocode") {
			return Dashboard{}, fmt.Errorf("%w: %w: %s", ErrProviderFailure, ErrLocationNotFound, resp.Error)
		}
		return Dashboard{}, fmt.Errorf("%w: %s", ErrProviderFailure, resp.Error)
	}

	var first *RawForecastSample
	if len(resp.Forecast.List) > 0 {
		first = &resp.Forecast.List[0]
	}

	current, err := SynthesizeCurrent(resp.Current, first)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Current: current,
		Daily:   AggregateDaily(resp.Forecast.List, f),
		Hourly:  WindowHourly(resp.Forecast.List, f),
	}, nil
}
