package config

import (
	"math"

	"github.com/JJC3321/BeatDash/internal/music"
	"github.com/JJC3321/BeatDash/internal/render"
)

// Generate builds a full session configuration from playlist metrics.
// The mapping is pure: the same metrics always produce the same
// configuration, with every numeric field pre-clamped to its valid range.
// A nil metrics argument yields the default configuration.
func Generate(playlistName string, m *music.PlaylistMetrics) GameConfiguration {
	if m == nil {
		cfg := DefaultConfiguration()
		cfg.Normalize()
		return cfg
	}

	cfg := GameConfiguration{
		GameType:     gameTypeFor(m),
		Gravity:      0.5 + (1.0-m.AvgAcousticness)*1.5,
		PlayerSpeed:  100 + m.AvgEnergy*300,
		SpawnRateMs:  music.SpawnIntervalMs(m, 1500),
		Difficulty:   difficultyFor(m),
		ColorPalette: paletteFor(m),
		EnemyTypes:   enemyTypesFor(m),
		Metrics:      m,
	}
	cfg.Normalize()
	return cfg
}

// gameTypeFor picks the mode: danceable playlists favor the runner,
// high-energy ones the dodge, bright ones the collector, everything else
// the platformer.
func gameTypeFor(m *music.PlaylistMetrics) GameType {
	switch {
	case m.AvgDanceability > 0.7:
		return GameTypeRunner
	case m.AvgEnergy > 0.7:
		return GameTypeDodge
	case m.AvgValence > 0.65:
		return GameTypeCollector
	default:
		return GameTypePlatformer
	}
}

// difficultyFor scales with energy and tempo distance from the baseline.
func difficultyFor(m *music.PlaylistMetrics) int {
	tempoPush := math.Abs(m.AvgTempo-music.BaselineTempo) / 60 // 0 at 120 BPM, 1 at 60/180
	raw := 1 + m.AvgEnergy*6 + tempoPush*3
	return int(math.Round(raw))
}

// paletteFor chooses warm colors for bright playlists, cool colors for
// somber ones.
func paletteFor(m *music.PlaylistMetrics) Palette {
	if m.AvgValence > 0.5 {
		return Palette{
			Background:  "gray",
			Ground:      "orange",
			Player:      "gold",
			Hazard:      "red",
			Collectible: "yellow",
			Accent:      "pink",
		}
	}
	return Palette{
		Background:  "gray",
		Ground:      "blue",
		Player:      "cyan",
		Hazard:      "magenta",
		Collectible: "sky",
		Accent:      "white",
	}
}

// enemyTypesFor orders hazard descriptors by the playlist's character:
// acoustic playlists get rounded shapes, electronic ones get sharp shapes.
func enemyTypesFor(m *music.PlaylistMetrics) []render.Descriptor {
	pal := paletteFor(m)
	if m.AvgAcousticness > 0.5 {
		return []render.Descriptor{
			{Shape: "circle", Color: pal.Hazard},
			{Shape: "diamond", Color: pal.Accent},
		}
	}
	return []render.Descriptor{
		{Shape: "spike", Color: pal.Hazard},
		{Shape: "block", Color: pal.Accent},
	}
}
