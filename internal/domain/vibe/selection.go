package vibe

import "strings"

// Selection is the set of vibe identifiers a caller picked. Entries may be ids
// ("1", "custom-...") or display names ("Confident").
type Selection map[string]struct{}

// NewSelection builds a selection, trimming entries and dropping empty ones.
func NewSelection(identifiers ...string) Selection {
	sel := make(Selection, len(identifiers))
	for _, raw := range identifiers {
		if id := strings.TrimSpace(raw); id != "" {
			sel[id] = struct{}{}
		}
	}
	return sel
}

// Has reports whether the exact identifier was selected.
func (s Selection) Has(identifier string) bool {
	_, ok := s[identifier]
	return ok
}

// Matches reports whether v was selected by either its id or its display name.
func Matches(sel Selection, v Vibe) bool {
	return sel.Has(v.ID) || sel.Has(v.Name)
}
