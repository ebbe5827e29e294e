package vibe

import (
	"strings"
	"time"
)

// CustomPrefix marks ids of user created vibes.
const CustomPrefix = "custom-"

// Vibe is a user selectable mood.
type Vibe struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Custom    bool      `json:"custom"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Ids of the built-in vibes.
const (
	IDConfident    = "1"
	IDSoft         = "2"
	IDBold         = "3"
	IDElegant      = "4"
	IDRelaxed      = "5"
	IDCreative     = "6"
	IDProfessional = "7"
	IDMysterious   = "8"
)

var defaults = []Vibe{
	{ID: IDConfident, Name: "Confident", Emoji: "😎"},
	{ID: IDSoft, Name: "Soft", Emoji: "🌸"},
	{ID: IDBold, Name: "Bold", Emoji: "🔥"},
	{ID: IDElegant, Name: "Elegant", Emoji: "✨"},
	{ID: IDRelaxed, Name: "Relaxed", Emoji: "🌊"},
	{ID: IDCreative, Name: "Creative", Emoji: "🎨"},
	{ID: IDProfessional, Name: "Professional", Emoji: "💼"},
	{ID: IDMysterious, Name: "Mysterious", Emoji: "🌙"},
}

// Defaults returns a copy of the built-in vibe set in display order.
func Defaults() []Vibe {
	out := make([]Vibe, len(defaults))
	copy(out, defaults)
	return out
}

// Default looks up a built-in vibe by id.
func Default(id string) (Vibe, bool) {
	for _, v := range defaults {
		if v.ID == id {
			return v, true
		}
	}
	return Vibe{}, false
}

// IsCustomID reports whether id names a user created vibe.
func IsCustomID(id string) bool {
	return strings.HasPrefix(id, CustomPrefix)
}

// CreateRequest captures a new custom vibe.
type CreateRequest struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}
