package weather

import (
	"fmt"
	"strings"
	"time"
)

// Icon is the closed icon taxonomy shared by every derived structure.
type Icon string

const (
	IconSunny             Icon = "sunny"
	IconClearNight        Icon = "clear-night"
	IconPartlyCloudy      Icon = "partly-cloudy"
	IconPartlyCloudyNight Icon = "partly-cloudy-night"
	IconCloud             Icon = "cloud"
	IconRain              Icon = "rain"
	IconStorm             Icon = "storm"
	IconSnow              Icon = "snow"
	IconFog               Icon = "fog"
)

// UnknownCity is the placeholder name used when a location cannot be resolved.
const UnknownCity = "Local Desconhecido"

// Location is a resolved place as shown on the dashboard.
type Location struct {
	City        string  `json:"city"`
	State       string  `json:"state"`
	CountryCode string  `json:"countryCode"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// Resolved reports whether the location carries a real place name.
func (l Location) Resolved() bool {
	return l.City != "" && l.City != UnknownCity
}

// Query identifies what the user searched for: a city name or a coordinate pair.
type Query struct {
	City string
	Lat  *float64
	Lng  *float64
}

// HasCoordinates reports whether both coordinates are set.
func (q Query) HasCoordinates() bool {
	return q.Lat != nil && q.Lng != nil
}

// Key returns a canonical string key for indexing this query in stores.
func (q Query) Key() string {
	if q.HasCoordinates() {
		return fmt.Sprintf("%.4f,%.4f", *q.Lat, *q.Lng)
	}
	return strings.ToLower(strings.TrimSpace(q.City))
}

// Validate checks that the query names a city or carries both coordinates in range.
func (q Query) Validate() error {
	if q.HasCoordinates() {
		if *q.Lat < -90 || *q.Lat > 90 {
			return fmt.Errorf("%w: latitude %f out of range", ErrInvalidQuery, *q.Lat)
		}
		if *q.Lng < -180 || *q.Lng > 180 {
			return fmt.Errorf("%w: longitude %f out of range", ErrInvalidQuery, *q.Lng)
		}
		return nil
	}
	if strings.TrimSpace(q.City) == "" {
		return fmt.Errorf("%w: city or lat/lng is required", ErrInvalidQuery)
	}
	return nil
}

// CurrentWeather is the "now" snapshot.
type CurrentWeather struct {
	Temp        int     `json:"temp"`
	FeelsLike   int     `json:"feelsLike"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   int     `json:"windSpeed"`
	Pressure    float64 `json:"pressure"`
	Description string  `json:"description"`
	Icon        Icon    `json:"icon"`
	Rain        float64 `json:"rain"`
	Pop         int     `json:"pop"`
	Sunrise     int64   `json:"sunrise"`
	Sunset      int64   `json:"sunset"`
	Visibility  float64 `json:"visibility"`
	UVIndex     int     `json:"uvIndex"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// IsDayTime reports whether now falls strictly between sunrise and sunset.
// Without both values it assumes daytime.
func (c CurrentWeather) IsDayTime(now time.Time) bool {
	if c.Sunrise == 0 || c.Sunset == 0 {
		return true
	}
	ts := now.Unix()
	return ts > c.Sunrise && ts < c.Sunset
}

// DailyForecastEntry is one calendar day of the forecast.
type DailyForecastEntry struct {
	Day       string  `json:"day"`
	Temp      int     `json:"temp"`
	High      int     `json:"high"`
	Low       int     `json:"low"`
	Rain      int     `json:"rain"`
	Icon      Icon    `json:"icon"`
	Humidity  float64 `json:"humidity"`
	WindSpeed int     `json:"windSpeed"`
	Pressure  float64 `json:"pressure"`
}

// HourlyForecastEntry is one forecast sample projected for the hourly view.
type HourlyForecastEntry struct {
	Hour      string  `json:"hour"`
	Temp      int     `json:"temp"`
	Rain      int     `json:"rain"`
	Humidity  float64 `json:"humidity"`
	WindSpeed int     `json:"windSpeed"`
	FeelsLike int     `json:"feelsLike"`
}

// Dashboard is the full derived view for one provider response.
type Dashboard struct {
	Current CurrentWeather        `json:"current"`
	Daily   []DailyForecastEntry  `json:"daily"`
	Hourly  []HourlyForecastEntry `json:"hourly"`
}

// Report is what the service hands to the presentation layer and stores.
type Report struct {
	Location  Location  `json:"location"`
	Dashboard Dashboard `json:"dashboard"`
	Phrase    string    `json:"phrase"`
	IsDayTime bool      `json:"isDayTime"`
	FetchedAt time.Time `json:"fetchedAt"` // always UTC
}
