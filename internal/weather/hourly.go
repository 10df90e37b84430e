package weather

import "github.com/i474232898/weather-emissions-dashboard/internal/common"

// MaxHourlyEntries caps the hourly window.
const MaxHourlyEntries = 24

// WindowHourly projects the first MaxHourlyEntries samples one-to-one, in order.
// Each sample's probability is reported as-is.
func WindowHourly(samples []RawForecastSample, f Formatter) []HourlyForecastEntry {
	n := min(len(samples), MaxHourlyEntries)
	hours := make([]HourlyForecastEntry, 0, n)
	for _, s := range samples[:n] {
		hours = append(hours, HourlyForecastEntry{
			Hour:      f.FormatHour(s.Dt),
			Temp:      common.Round(s.Main.Temp),
			Rain:      common.Round(s.Pop * 100),
			Humidity:  s.Main.Humidity,
			WindSpeed: MetersPerSecondToKmh(s.Wind.Speed),
			FeelsLike: common.Round(s.Main.FeelsLike),
		})
	}
	return hours
}
