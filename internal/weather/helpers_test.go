package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 2025-06-02 00:00 in São Paulo (UTC-3), a Monday.
var mondayMidnight = time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC).Unix()

const threeHours = int64(3 * 60 * 60)

func testFormatter(t *testing.T) Formatter {
	t.Helper()
	f, err := NewFormatterFor("America/Sao_Paulo")
	require.NoError(t, err)
	return f
}

func sample(dt int64, temp, tmin, tmax, pop float64, icon string) RawForecastSample {
	return RawForecastSample{
		Dt: dt,
		Main: RawMain{
			Temp:      temp,
			FeelsLike: temp + 1,
			TempMin:   tmin,
			TempMax:   tmax,
			Pressure:  1013,
			Humidity:  60,
		},
		Weather: []RawCondition{{Main: "Clouds", Description: "nublado", Icon: icon}},
		Wind:    RawWind{Speed: 5.0},
		Pop:     pop,
	}
}

// fiveDays returns 40 samples at 3 hour spacing starting Monday midnight local time.
func fiveDays() []RawForecastSample {
	samples := make([]RawForecastSample, 0, 40)
	for i := 0; i < 40; i++ {
		temp := 20 + float64(i%8)
		samples = append(samples, sample(mondayMidnight+int64(i)*threeHours, temp, temp-2, temp+2, float64(i%8)/10, "04d"))
	}
	return samples
}

func ptr[T any](v T) *T {
	return &v
}

func validCurrent() RawCurrentConditions {
	return RawCurrentConditions{
		Coord:      RawCoord{Lat: -23.55, Lon: -46.63},
		Weather:    []RawCondition{{Main: "Rain", Description: "chuva leve", Icon: "10d"}},
		Main:       &RawMain{Temp: 21.6, FeelsLike: 21.4, Humidity: 88, Pressure: 1015, TempMax: 23, TempMin: 19},
		Wind:       &RawWind{Speed: 5.0},
		Sys:        &RawSys{Country: "BR", Sunrise: 1748858400, Sunset: 1748897400},
		Visibility: 8000,
		Name:       "São Paulo",
	}
}
