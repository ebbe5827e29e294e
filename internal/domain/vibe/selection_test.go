package vibe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesByIDOrName(t *testing.T) {
	confident, ok := Default(IDConfident)
	require.True(t, ok)

	require.True(t, Matches(NewSelection("1"), confident))
	require.True(t, Matches(NewSelection("Confident"), confident))
	require.True(t, Matches(NewSelection(" Confident "), confident))
	require.False(t, Matches(NewSelection("confident"), confident))
	require.False(t, Matches(NewSelection("4", "Elegant"), confident))
	require.False(t, Matches(NewSelection(), confident))
}

func TestNewSelectionDropsBlanks(t *testing.T) {
	sel := NewSelection("", "  ", "7")
	require.Len(t, sel, 1)
	require.True(t, sel.Has("7"))
}

func TestDefaultsAreCopied(t *testing.T) {
	first := Defaults()
	first[0].Name = "changed"
	require.Equal(t, "Confident", Defaults()[0].Name)
	require.Len(t, Defaults(), 8)
	for _, v := range Defaults() {
		require.False(t, IsCustomID(v.ID))
	}
}
