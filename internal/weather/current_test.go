package weather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeCurrent(t *testing.T) {
	raw := validCurrent()
	raw.UVI = ptr(6.6)
	first := sample(mondayMidnight, 20, 18, 22, 0.42, "10d")

	got, err := SynthesizeCurrent(raw, &first)
	require.NoError(t, err)

	assert.Equal(t, CurrentWeather{
		Temp:        22,
		FeelsLike:   21,
		Humidity:    88,
		WindSpeed:   18,
		Pressure:    1015,
		Description: "chuva leve",
		Icon:        IconRain,
		Rain:        0,
		Pop:         42,
		Sunrise:     1748858400,
		Sunset:      1748897400,
		Visibility:  8.0,
		UVIndex:     7,
		Lat:         -23.55,
		Lon:         -46.63,
	}, got)
}

func TestSynthesizeCurrent_RainAccumulation(t *testing.T) {
	tests := []struct {
		name string
		rain *RawRain
		want float64
	}{
		{"absent", nil, 0},
		{"empty block", &RawRain{}, 0},
		{"one hour", &RawRain{OneH: ptr(1.2)}, 1.2},
		{"three hour fallback", &RawRain{ThreeH: ptr(3.4)}, 3.4},
		{"one hour preferred", &RawRain{OneH: ptr(0.7), ThreeH: ptr(3.4)}, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validCurrent()
			raw.Rain = tt.rain
			got, err := SynthesizeCurrent(raw, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Rain)
		})
	}
}

func TestSynthesizeCurrent_RainProbabilityCorrection(t *testing.T) {
	tests := []struct {
		name    string
		rain    *RawRain
		pop     *float64
		wantPop int
	}{
		{"measured rain with near-zero pop", &RawRain{OneH: ptr(2.5)}, ptr(0.001), 80},
		{"measured rain with zero pop", &RawRain{ThreeH: ptr(0.3)}, ptr(0.0), 80},
		{"measured rain and empty forecast", &RawRain{OneH: ptr(1.0)}, nil, 80},
		{"measured rain with real pop", &RawRain{OneH: ptr(2.5)}, ptr(0.35), 35},
		{"pop that rounds to one is kept", &RawRain{OneH: ptr(2.5)}, ptr(0.006), 1},
		{"no rain keeps zero pop", nil, ptr(0.001), 0},
		{"no rain and empty forecast", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validCurrent()
			raw.Rain = tt.rain

			var first *RawForecastSample
			if tt.pop != nil {
				s := sample(mondayMidnight, 20, 18, 22, *tt.pop, "10d")
				first = &s
			}

			got, err := SynthesizeCurrent(raw, first)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPop, got.Pop)
		})
	}
}

func TestSynthesizeCurrent_UVIndexDefaultsToZero(t *testing.T) {
	got, err := SynthesizeCurrent(validCurrent(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UVIndex)
}

func TestSynthesizeCurrent_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RawCurrentConditions)
		field  string
	}{
		{"missing main", func(r *RawCurrentConditions) { r.Main = nil }, "main"},
		{"missing weather", func(r *RawCurrentConditions) { r.Weather = nil }, "weather"},
		{"empty weather", func(r *RawCurrentConditions) { r.Weather = []RawCondition{} }, "weather"},
		{"missing wind", func(r *RawCurrentConditions) { r.Wind = nil }, "wind"},
		{"missing sys", func(r *RawCurrentConditions) { r.Sys = nil }, "sys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validCurrent()
			tt.mutate(&raw)

			got, err := SynthesizeCurrent(raw, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedProviderResponse)
			assert.Equal(t, CurrentWeather{}, got)

			var malformed *MalformedResponseError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.field, malformed.Field)
		})
	}
}
