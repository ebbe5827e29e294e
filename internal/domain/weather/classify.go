package weather

import "math"

// Classification is the display triple derived from a provider weather code.
type Classification struct {
	Condition Condition `json:"condition"`
	Text      string    `json:"text"`
	Icon      string    `json:"icon"`
}

type codeRange struct {
	min, max int
	class    Classification
}

// WMO interpretation codes, evaluated top-down.
var codeTable = []codeRange{
	{0, 0, Classification{ConditionSunny, "Clear sky", "☀️"}},
	{1, 3, Classification{ConditionCloudy, "Partly cloudy", "⛅"}},
	{4, 49, Classification{ConditionCloudy, "Foggy", "🌫️"}},
	{50, 59, Classification{ConditionRainy, "Drizzle", "🌧️"}},
	{60, 69, Classification{ConditionRainy, "Rain", "🌧️"}},
	{70, 79, Classification{ConditionSnowy, "Snow", "🌨️"}},
	{80, 84, Classification{ConditionRainy, "Rain showers", "🌦️"}},
	{85, 94, Classification{ConditionSnowy, "Snow showers", "🌨️"}},
	{95, 99, Classification{ConditionStormy, "Thunderstorm", "⛈️"}},
}

var unknownClassification = Classification{ConditionCloudy, "Unknown", "🌡️"}

// ClassifyCondition maps a WMO weather code to a condition. Codes outside 0..99 are
// classified as cloudy/"Unknown" rather than rejected.
func ClassifyCondition(code int) Classification {
	for _, row := range codeTable {
		if code >= row.min && code <= row.max {
			return row.class
		}
	}
	return unknownClassification
}

// ToFahrenheit converts and rounds half toward positive infinity, so 0.5 -> 1 and -0.5 -> 0.
func ToFahrenheit(celsius float64) int {
	return roundHalfUp(celsius*9/5 + 32)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Normalize assembles a snapshot from a raw provider reading.
func Normalize(cur Current, location string) Snapshot {
	class := ClassifyCondition(cur.WeatherCode)
	return Snapshot{
		TemperatureF:  ToFahrenheit(cur.TemperatureC),
		FeelsLikeF:    ToFahrenheit(cur.ApparentC),
		Condition:     class.Condition,
		ConditionText: class.Text,
		Icon:          class.Icon,
		HumidityPct:   clampPercent(roundHalfUp(cur.HumidityPct)),
		WindSpeedMph:  roundHalfUp(cur.WindSpeedMph),
		Location:      location,
	}
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
