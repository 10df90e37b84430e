package weather

import (
	"strings"

	"github.com/i474232898/weather-emissions-dashboard/internal/common"
)

// MetersPerSecondToKmh converts a wind speed and rounds it to whole km/h.
func MetersPerSecondToKmh(speed float64) int {
	return common.Round(speed * 3.6)
}

// MetersToKm converts a distance without rounding.
func MetersToKm(distance float64) float64 {
	return distance / 1000
}

var conditionIcons = map[string]Icon{
	"clear":        IconSunny,
	"rain":         IconRain,
	"drizzle":      IconRain,
	"clouds":       IconCloud,
	"snow":         IconSnow,
	"thunderstorm": IconStorm,
	"mist":         IconFog,
	"fog":          IconFog,
	"haze":         IconFog,
}

// MapConditionToIcon maps a provider condition category ("Clear", "Clouds", ...)
// to an icon. Unknown categories map to IconSunny.
func MapConditionToIcon(main string) Icon {
	if icon, ok := conditionIcons[strings.ToLower(strings.TrimSpace(main))]; ok {
		return icon
	}
	return IconSunny
}

var iconCodes = map[string]Icon{
	"01d": IconSunny,
	"01n": IconClearNight,
	"02d": IconPartlyCloudy,
	"02n": IconPartlyCloudyNight,
	"03d": IconCloud,
	"03n": IconCloud,
	"04d": IconCloud,
	"04n": IconCloud,
	"09d": IconRain,
	"09n": IconRain,
	"10d": IconRain,
	"10n": IconRain,
	"11d": IconStorm,
	"11n": IconStorm,
	"13d": IconSnow,
	"13n": IconSnow,
	"50d": IconFog,
	"50n": IconFog,
}

// MapIconCode maps a provider icon code ("01d", "10n", ...) to an icon,
// keeping the day/night and cloud density distinctions. Unknown codes map to IconSunny.
func MapIconCode(code string) Icon {
	if icon, ok := iconCodes[code]; ok {
		return icon
	}
	return IconSunny
}
