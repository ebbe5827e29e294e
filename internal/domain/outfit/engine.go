package outfit

import (
	"github.com/yanqian/smartcloset/internal/domain/vibe"
	"github.com/yanqian/smartcloset/internal/domain/wardrobe"
	"github.com/yanqian/smartcloset/internal/domain/weather"
)

const (
	freezingBelowF = 40
	coolBelowF     = 55
	mildBelowF     = 70
	warmBelowF     = 85
	windyAboveMph  = 15
)

// Suggestion is one category of clothing advice.
type Suggestion struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
	Tip      string   `json:"tip"`
}

type vibeRule struct {
	vibeID     string
	suggestion Suggestion
}

var vibeRules = []vibeRule{
	{vibe.IDConfident, Suggestion{"Confident Look", []string{"Bold colors", "Statement piece", "Sharp fit"}, "😎 Own the day with a power outfit"}},
	{vibe.IDElegant, Suggestion{"Elegant Touch", []string{"Neutral tones", "Clean lines", "Quality fabrics"}, "✨ Keep it classy and sophisticated"}},
	{vibe.IDProfessional, Suggestion{"Professional", []string{"Blazer", "Dress shirt", "Tailored pants"}, "💼 Dress to impress for work"}},
	{vibe.IDRelaxed, Suggestion{"Casual Comfort", []string{"Comfortable jeans", "Soft tee", "Sneakers"}, "🌊 Keep it chill and comfortable"}},
}

// Suggest derives clothing advice from the weather and the selected vibes.
// Rule groups run in a fixed order: temperature band, precipitation, wind,
// then vibes. The result is a fresh slice on every call.
//
// The inventory is accepted so callers can pass the user's closet, but the
// current rules do not consult it.
func Suggest(snap weather.Snapshot, selected vibe.Selection, _ []wardrobe.Item) []Suggestion {
	out := make([]Suggestion, 0, 6)
	out = append(out, temperatureBand(snap.TemperatureF)...)

	if snap.Condition == weather.ConditionRainy || snap.Condition == weather.ConditionStormy {
		out = append(out, suggestion("Rain Gear", "🌧️ Rain expected - grab waterproof gear",
			"Waterproof jacket", "Rain boots", "Umbrella"))
	}
	if snap.WindSpeedMph > windyAboveMph {
		out = append(out, suggestion("Wind Protection", "💨 Windy conditions - avoid loose clothing",
			"Windbreaker", "Fitted jacket", "Layers"))
	}

	for _, rule := range vibeRules {
		v, _ := vibe.Default(rule.vibeID)
		if vibe.Matches(selected, v) {
			out = append(out, clone(rule.suggestion))
		}
	}
	return out
}

func temperatureBand(tempF int) []Suggestion {
	switch {
	case tempF < freezingBelowF:
		return []Suggestion{
			suggestion("Outerwear", "🥶 It's freezing! Layer up with a warm coat", "Heavy coat", "Puffer jacket", "Wool coat"),
			suggestion("Accessories", "Don't forget to cover your extremities", "Scarf", "Gloves", "Beanie"),
		}
	case tempF < coolBelowF:
		return []Suggestion{suggestion("Outerwear", "🍂 Cool weather - a light layer will do", "Light jacket", "Cardigan", "Hoodie")}
	case tempF < mildBelowF:
		return []Suggestion{suggestion("Tops", "👍 Perfect weather for layering", "Long sleeve shirt", "Light sweater", "Button-up")}
	case tempF < warmBelowF:
		return []Suggestion{suggestion("Tops", "☀️ Warm day - keep it light and breathable", "T-shirt", "Tank top", "Light blouse")}
	default:
		return []Suggestion{suggestion("Tops", "🔥 It's hot! Wear loose, breathable fabrics", "Tank top", "Linen shirt", "Sleeveless top")}
	}
}

// TemperatureColor maps a temperature to the display accent used for it.
func TemperatureColor(tempF int) string {
	switch {
	case tempF < freezingBelowF:
		return "#60a5fa"
	case tempF < coolBelowF:
		return "#93c5fd"
	case tempF < mildBelowF:
		return "#86efac"
	case tempF < warmBelowF:
		return "#fcd34d"
	default:
		return "#f87171"
	}
}

func suggestion(category, tip string, items ...string) Suggestion {
	return Suggestion{Category: category, Items: items, Tip: tip}
}

func clone(s Suggestion) Suggestion {
	s.Items = append([]string(nil), s.Items...)
	return s
}
