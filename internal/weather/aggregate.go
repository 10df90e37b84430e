package weather

import "github.com/i474232898/weather-emissions-dashboard/internal/common"

const (
	// representativeStride picks one sample per day from a 3-hourly list (8 per day).
	representativeStride = 8

	// MaxDailyEntries caps the daily forecast.
	MaxDailyEntries = 7
)

// AggregateDaily groups a flat forecast list into one entry per representative
// sample. Representatives are samples 0, 8, 16, ... of the input as given, at
// most MaxDailyEntries of them. Temp, icon, humidity, wind and pressure come
// from the representative; high, low and rain are taken over every sample
// that falls on the representative's calendar day. Two representatives on the
// same day yield two entries.
func AggregateDaily(samples []RawForecastSample, f Formatter) []DailyForecastEntry {
	if len(samples) == 0 {
		return []DailyForecastEntry{}
	}

	groups := make(map[string][]RawForecastSample)
	for _, s := range samples {
		k := f.DayKey(s.Dt)
		groups[k] = append(groups[k], s)
	}

	days := make([]DailyForecastEntry, 0, MaxDailyEntries)
	for i := 0; i < len(samples) && len(days) < MaxDailyEntries; i += representativeStride {
		rep := samples[i]
		group := groups[f.DayKey(rep.Dt)]

		high, low, maxPop := rep.Main.TempMax, rep.Main.TempMin, rep.Pop
		for _, s := range group {
			high = max(high, s.Main.TempMax)
			low = min(low, s.Main.TempMin)
			maxPop = max(maxPop, s.Pop)
		}

		days = append(days, DailyForecastEntry{
			Day:       f.FormatDay(rep.Dt),
			Temp:      common.Round(rep.Main.Temp),
			High:      common.Round(high),
			Low:       common.Round(low),
			Rain:      common.Round(maxPop * 100),
			Icon:      MapIconCode(rep.condition().Icon),
			Humidity:  rep.Main.Humidity,
			WindSpeed: MetersPerSecondToKmh(rep.Wind.Speed),
			Pressure:  rep.Main.Pressure,
		})
	}

	return days
}
