package weather

// Raw provider payloads, shaped after the OpenWeather current-conditions and
// 5 day / 3 hour forecast responses. Blocks the synthesizer requires are
// pointers so their absence can be told apart from zero values.

type RawCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RawCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type RawMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
	Pressure  float64 `json:"pressure"`
	TempMax   float64 `json:"temp_max"`
	TempMin   float64 `json:"temp_min"`
}

type RawWind struct {
	Speed float64 `json:"speed"`
}

// RawRain carries precipitation accumulation in mm for the last 1h or 3h.
type RawRain struct {
	OneH   *float64 `json:"1h,omitempty"`
	ThreeH *float64 `json:"3h,omitempty"`
}

type RawSys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// RawCurrentConditions is the provider's current-conditions payload.
type RawCurrentConditions struct {
	Coord      RawCoord       `json:"coord"`
	Weather    []RawCondition `json:"weather"`
	Main       *RawMain       `json:"main"`
	Wind       *RawWind       `json:"wind"`
	Rain       *RawRain       `json:"rain,omitempty"`
	Sys        *RawSys        `json:"sys"`
	Visibility float64        `json:"visibility"`
	Name       string         `json:"name"`
	Pop        *float64       `json:"pop,omitempty"`
	UVI        *float64       `json:"uvi,omitempty"`
}

// RawForecastSample is one entry of the provider's flat forecast list.
type RawForecastSample struct {
	Dt      int64          `json:"dt"`
	Main    RawMain        `json:"main"`
	Weather []RawCondition `json:"weather"`
	Wind    RawWind        `json:"wind"`
	Pop     float64        `json:"pop"`
	Rain    *RawRain       `json:"rain,omitempty"`
}

// RawForecast is the provider's forecast payload.
type RawForecast struct {
	List []RawForecastSample `json:"list"`
}

// ProviderResponse bundles both payloads. A non-empty Error marks a provider failure.
type ProviderResponse struct {
	Current  RawCurrentConditions `json:"current"`
	Forecast RawForecast          `json:"forecast"`
	Error    string               `json:"error,omitempty"`
}

func (s RawForecastSample) condition() RawCondition {
	if len(s.Weather) == 0 {
		return RawCondition{}
	}
	return s.Weather[0]
}

// accumulation prefers the 1h reading and falls back to 3h; absent means 0.
func (r *RawRain) accumulation() float64 {
	if r == nil {
		return 0
	}
	if r.OneH != nil {
		return *r.OneH
	}
	if r.ThreeH != nil {
		return *r.ThreeH
	}
	return 0
}
