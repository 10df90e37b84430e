package weather

import "github.com/i474232898/weather-emissions-dashboard/internal/common"

// inconsistentRainPop is the probability forced when rain was measured but the
// provider's probability rounds to zero.
const inconsistentRainPop = 80.0

// SynthesizeCurrent builds the "now" snapshot from the current-conditions
// payload and the first forecast sample, which carries the precipitation
// probability the current payload lacks. first may be nil for an empty forecast.
func SynthesizeCurrent(raw RawCurrentConditions, first *RawForecastSample) (CurrentWeather, error) {
	switch {
	case raw.Main == nil:
		return CurrentWeather{}, &MalformedResponseError{Field: "main"}
	case len(raw.Weather) == 0:
		return CurrentWeather{}, &MalformedResponseError{Field: "weather"}
	case raw.Wind == nil:
		return CurrentWeather{}, &MalformedResponseError{Field: "wind"}
	case raw.Sys == nil:
		return CurrentWeather{}, &MalformedResponseError{Field: "sys"}
	}

	rain := raw.Rain.accumulation()

	var pop float64
	if first != nil {
		pop = first.Pop * 100
	}
	if rain > 0 && common.Round(pop) == 0 {
		pop = inconsistentRainPop
	}

	var uvi float64
	if raw.UVI != nil {
		uvi = *raw.UVI
	}

	cond := raw.Weather[0]
	return CurrentWeather{
		Temp:        common.Round(raw.Main.Temp),
		FeelsLike:   common.Round(raw.Main.FeelsLike),
		Humidity:    raw.Main.Humidity,
		WindSpeed:   MetersPerSecondToKmh(raw.Wind.Speed),
		Pressure:    raw.Main.Pressure,
		Description: cond.Description,
		Icon:        MapConditionToIcon(cond.Main),
		Rain:        rain,
		Pop:         common.Round(pop),
		Sunrise:     raw.Sys.Sunrise,
		Sunset:      raw.Sys.Sunset,
		Visibility:  MetersToKm(raw.Visibility),
		UVIndex:     common.Round(uvi),
		Lat:         raw.Coord.Lat,
		Lon:         raw.Coord.Lon,
	}, nil
}
