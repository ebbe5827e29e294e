package weather

import "errors"

// Condition is the coarse weather category the outfit rules key off.
type Condition string

const (
	ConditionSunny  Condition = "sunny"
	ConditionCloudy Condition = "cloudy"
	ConditionRainy  Condition = "rainy"
	ConditionSnowy  Condition = "snowy"
	ConditionWindy  Condition = "windy"
	ConditionStormy Condition = "stormy"
)

// Valid reports whether c is one of the six known categories.
func (c Condition) Valid() bool {
	switch c {
	case ConditionSunny, ConditionCloudy, ConditionRainy, ConditionSnowy, ConditionWindy, ConditionStormy:
		return true
	default:
		return false
	}
}

// Snapshot is an immutable point-in-time weather reading in display units.
type Snapshot struct {
	TemperatureF  int       `json:"temperatureF"`
	FeelsLikeF    int       `json:"feelsLikeF"`
	Condition     Condition `json:"condition"`
	ConditionText string    `json:"conditionText"`
	Icon          string    `json:"icon"`
	HumidityPct   int       `json:"humidityPct"`
	WindSpeedMph  int       `json:"windSpeedMph"`
	Location      string    `json:"location"`
}

// Fallback is served whenever live weather cannot be resolved.
var Fallback = Snapshot{
	TemperatureF:  65,
	FeelsLikeF:    63,
	Condition:     ConditionSunny,
	ConditionText: "Partly cloudy",
	Icon:          "⛅",
	HumidityPct:   45,
	WindSpeedMph:  8,
	Location:      "Your City",
}

// Source tells callers whether a reading is live or the offline fallback.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
	// SourceProvided marks a snapshot supplied by the caller. Service.Current
	// never returns it.
	SourceProvided Source = "provided"
)

// Reading is the result of a weather lookup. It never carries an error:
// failures surface as Source == SourceFallback.
type Reading struct {
	Snapshot Snapshot `json:"snapshot"`
	Source   Source   `json:"source"`
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates fall inside the WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// LocationRequest carries the caller supplied position. Nil fields mean the
// client did not share its location.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" form:"lat"`
	Longitude *float64 `json:"longitude" form:"lon"`
}

// Place is the reverse geocoded label for a position.
type Place struct {
	City      string
	Subregion string
}

// Current is the raw provider reading, metric temperatures and mph wind.
type Current struct {
	TemperatureC float64
	ApparentC    float64
	WeatherCode  int
	HumidityPct  float64
	WindSpeedMph float64
}

// ErrLocationUnavailable is returned when the caller has not shared a usable position.
var ErrLocationUnavailable = errors.New("location unavailable")

// Config wires runtime settings for the weather domain.
type Config struct {
	DefaultPlace string
}
