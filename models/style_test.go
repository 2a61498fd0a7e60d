package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindStylePreset(t *testing.T) {
	preset, ok := FindStylePreset("vintage")
	require.True(t, ok)
	assert.Equal(t, "复古经典", preset.Name)
	assert.NotEmpty(t, preset.PreviewImage)

	_, ok = FindStylePreset("pirate")
	assert.False(t, ok)
}

func TestResolveStyleFromID(t *testing.T) {
	style := ResolveStyle(Style{ID: "business"})
	assert.Equal(t, "商务正装", style.Name)
	assert.Equal(t, "专业商务造型", style.Description)
}

func TestResolveStyleKeepsClientValues(t *testing.T) {
	style := ResolveStyle(Style{ID: "business", Name: "Custom", Description: "my own"})
	assert.Equal(t, "Custom", style.Name)
	assert.Equal(t, "my own", style.Description)

	style = ResolveStyle(Style{ID: "casual", Description: "loose fit"})
	assert.Equal(t, "休闲时尚", style.Name)
	assert.Equal(t, "loose fit", style.Description)
}

func TestResolveStyleUnknownID(t *testing.T) {
	style := ResolveStyle(Style{ID: "unknown"})
	assert.Equal(t, Style{ID: "unknown"}, style)
}
