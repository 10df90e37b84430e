package weather

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Idempotent(t *testing.T) {
	f := testFormatter(t)
	resp := ProviderResponse{
		Current:  validCurrent(),
		Forecast: RawForecast{List: fiveDays()},
	}

	first, err := Build(resp, f)
	require.NoError(t, err)
	second, err := Build(resp, f)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuild_ProviderError(t *testing.T) {
	_, err := Build(ProviderResponse{Error: "city not found"}, testFormatter(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderFailure)
	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.Contains(t, err.Error(), "city not found")

	_, err = Build(ProviderResponse{Error: "Invalid API key"}, testFormatter(t))
	assert.ErrorIs(t, err, ErrProviderFailure)
	assert.NotErrorIs(t, err, ErrLocationNotFound)
}

func TestBuild_MalformedCurrent(t *testing.T) {
	resp := ProviderResponse{Current: validCurrent(), Forecast: RawForecast{List: fiveDays()}}
	resp.Current.Main = nil

	_, err := Build(resp, testFormatter(t))
	assert.ErrorIs(t, err, ErrMalformedProviderResponse)
}

func TestBuild_EmptyForecast(t *testing.T) {
	d, err := Build(ProviderResponse{Current: validCurrent()}, testFormatter(t))
	require.NoError(t, err)

	assert.Empty(t, d.Daily)
	assert.Empty(t, d.Hourly)
	assert.Equal(t, 22, d.Current.Temp)
	assert.Equal(t, 0, d.Current.Pop)
}

func TestBuild_FromProviderJSON(t *testing.T) {
	data, err := os.ReadFile("testdata/provider_response.json")
	require.NoError(t, err)

	var resp ProviderResponse
	require.NoError(t, json.Unmarshal(data, &resp))

	d, err := Build(resp, testFormatter(t))
	require.NoError(t, err)

	assert.Equal(t, 24, d.Current.Temp)
	assert.Equal(t, 80, d.Current.Pop, "measured rain overrides a zero probability")
	assert.Equal(t, 2.5, d.Current.Rain)
	assert.Equal(t, IconRain, d.Current.Icon)
	assert.Equal(t, 10.0, d.Current.Visibility)
	assert.Equal(t, 3, d.Current.UVIndex)

	require.Len(t, d.Hourly, 3)
	assert.Equal(t, []string{"09", "12", "15"}, []string{d.Hourly[0].Hour, d.Hourly[1].Hour, d.Hourly[2].Hour})

	require.Len(t, d.Daily, 1)
	assert.Equal(t, "seg.", d.Daily[0].Day)
	assert.Equal(t, 31, d.Daily[0].High)
	assert.Equal(t, 19, d.Daily[0].Low)
	assert.Equal(t, 60, d.Daily[0].Rain)
	assert.Equal(t, IconPartlyCloudy, d.Daily[0].Icon)
}

func TestBuild_MalformedProviderJSON(t *testing.T) {
	payload := `{"current":{"coord":{"lat":1,"lon":2},"weather":[{"main":"Clear","icon":"01d"}],"wind":{"speed":1},"sys":{"country":"BR"}},"forecast":{"list":[]}}`

	var resp ProviderResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	_, err := Build(resp, testFormatter(t))
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "main", malformed.Field)
}
