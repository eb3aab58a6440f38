package config

import (
	_ "embed"

	"github.com/JJC3321/BeatDash/internal/render"
)

//go:embed defaults/beatdash.yaml
var defaultConfigYAML []byte

// DefaultConfiguration returns the hardcoded fallback configuration, used
// when no YAML source is available at all.
func DefaultConfiguration() GameConfiguration {
	return GameConfiguration{
		GameType:    GameTypePlatformer,
		Gravity:     1.0,
		PlayerSpeed: 200,
		SpawnRateMs: 1500,
		Difficulty:  5,
		ColorPalette: Palette{
			Background:  "gray",
			Ground:      "green",
			Player:      "cyan",
			Hazard:      "red",
			Collectible: "gold",
			Accent:      "magenta",
		},
		EnemyTypes: []render.Descriptor{
			{Shape: "spike", Color: "red"},
			{Shape: "block", Color: "orange"},
		},
	}
}
