package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowHourly(t *testing.T) {
	f := testFormatter(t)
	samples := fiveDays()

	hours := WindowHourly(samples, f)
	require.Len(t, hours, MaxHourlyEntries)

	assert.Equal(t, HourlyForecastEntry{
		Hour:      "00",
		Temp:      20,
		Rain:      0,
		Humidity:  60,
		WindSpeed: 18,
		FeelsLike: 21,
	}, hours[0])
	assert.Equal(t, "21", hours[7].Hour)
	assert.Equal(t, 70, hours[7].Rain)
	assert.Equal(t, "00", hours[8].Hour)
}

func TestWindowHourly_ShortInput(t *testing.T) {
	f := testFormatter(t)
	samples := fiveDays()[:5]

	hours := WindowHourly(samples, f)
	require.Len(t, hours, 5)
	for i, h := range hours {
		assert.Equal(t, f.FormatHour(samples[i].Dt), h.Hour)
	}
}

func TestWindowHourly_Empty(t *testing.T) {
	hours := WindowHourly(nil, testFormatter(t))
	require.NotNil(t, hours)
	assert.Empty(t, hours)
}

func TestWindowHourly_IndependentFromDailyAggregation(t *testing.T) {
	f := testFormatter(t)
	samples := []RawForecastSample{
		sample(mondayMidnight, 20, 19, 21, 0.3, "10d"),
		sample(mondayMidnight+threeHours, 20, 19, 21, 0.9, "10d"),
	}

	hours := WindowHourly(samples, f)
	days := AggregateDaily(samples, f)

	require.Len(t, hours, 2)
	require.Len(t, days, 1)
	assert.Equal(t, 30, hours[0].Rain)
	assert.Equal(t, 90, days[0].Rain)
}
