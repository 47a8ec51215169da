// Package food holds personal food texture preferences.
//
// A person either prefers their food in a given texture or they don't. Fish
// dishes get their own, prefixed copy of the same preferences.
package food

import (
	"maps"
	"slices"

	"github.com/marcodamonte/typequirks/prefix"
)

type Texture string

const (
	Stick Texture = "stick"
	Ball  Texture = "ball"
	Soup  Texture = "soup"
)

// Preferences maps a texture to whether it is preferred.
type Preferences map[Texture]bool

// FishPrefix is prepended to every texture in fish preferences.
const FishPrefix = "fish_"

var texturePreferences = Preferences{
	Stick: true,
	Ball:  true,
	Soup:  false,
}

// TexturePreferences returns a copy of the preferences that apply to any food.
func TexturePreferences() Preferences {
	return maps.Clone(texturePreferences)
}

// Textures returns every known texture, sorted.
func Textures() []Texture {
	return slices.Sorted(maps.Keys(texturePreferences))
}

// FishPreferences returns the texture preferences specific to fish being the
// main ingredient, keyed by FishKey.
func FishPreferences() map[string]bool {
	return prefix.Prefix(TexturePreferences(), FishPrefix)
}

// FishKey returns the key of t in FishPreferences, e.g. "fish_stick".
func FishKey(t Texture) string { return FishPrefix + string(t) }
