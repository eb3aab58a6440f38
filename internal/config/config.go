// Package config provides the game configuration model, YAML-based loading
// with embedded defaults, and the deterministic configuration generator that
// turns playlist metrics into a playable setup.
package config

import (
	"github.com/JJC3321/BeatDash/internal/core"
	"github.com/JJC3321/BeatDash/internal/music"
	"github.com/JJC3321/BeatDash/internal/render"
)

// GameType selects which mode controller runs the session.
type GameType string

const (
	GameTypePlatformer GameType = "platformer"
	GameTypeDodge      GameType = "dodge"
	GameTypeCollector  GameType = "collector"
	GameTypeRunner     GameType = "runner"
)

// Palette is the six named colors a configuration carries. Names are
// resolved to screen colors by core.ColorByName at render time.
type Palette struct {
	Background  string `yaml:"background"`
	Ground      string `yaml:"ground"`
	Player      string `yaml:"player"`
	Hazard      string `yaml:"hazard"`
	Collectible string `yaml:"collectible"`
	Accent      string `yaml:"accent"`
}

// GameConfiguration is everything a mode controller needs for one session.
// It is immutable once the session starts: the controller computes its
// derived parameters from it exactly once at setup.
type GameConfiguration struct {
	GameType     GameType               `yaml:"game_type"`
	Gravity      float64                `yaml:"gravity"`
	PlayerSpeed  float64                `yaml:"player_speed"`
	SpawnRateMs  float64                `yaml:"spawn_rate_ms"`
	Difficulty   int                    `yaml:"difficulty"`
	ColorPalette Palette                `yaml:"color_palette"`
	EnemyTypes   []render.Descriptor    `yaml:"enemy_types"`
	Metrics      *music.PlaylistMetrics `yaml:"metrics,omitempty"`
}

// Clamping bounds for configuration numeric fields.
const (
	MinGravity     = 0.5
	MaxGravity     = 2.0
	MinPlayerSpeed = 100.0
	MaxPlayerSpeed = 400.0
	MinSpawnRateMs = 500.0
	MaxSpawnRateMs = 3000.0
	MinDifficulty  = 1
	MaxDifficulty  = 10
)

// Normalize clamps all numeric fields to their valid ranges, substitutes
// zero values with defaults, and guarantees a non-empty palette and enemy
// list. The mode controllers assume they always receive a normalized
// configuration, so every load/generate path calls this.
func (c *GameConfiguration) Normalize() {
	def := DefaultConfiguration()

	if c.Gravity == 0 {
		c.Gravity = def.Gravity
	}
	if c.PlayerSpeed == 0 {
		c.PlayerSpeed = def.PlayerSpeed
	}
	if c.SpawnRateMs == 0 {
		c.SpawnRateMs = def.SpawnRateMs
	}
	if c.Difficulty == 0 {
		c.Difficulty = def.Difficulty
	}

	c.Gravity = core.ClampF(c.Gravity, MinGravity, MaxGravity)
	c.PlayerSpeed = core.ClampF(c.PlayerSpeed, MinPlayerSpeed, MaxPlayerSpeed)
	c.SpawnRateMs = core.ClampF(c.SpawnRateMs, MinSpawnRateMs, MaxSpawnRateMs)
	c.Difficulty = core.Clamp(c.Difficulty, MinDifficulty, MaxDifficulty)

	if c.ColorPalette == (Palette{}) {
		c.ColorPalette = def.ColorPalette
	}
	if len(c.EnemyTypes) == 0 {
		c.EnemyTypes = def.EnemyTypes
	}
	// Unrecognized game types are left as-is: the mode lookup falls back
	// to the platformer controller.
}

// Params derives the four simulation parameters from the configuration.
func (c *GameConfiguration) Params() music.Params {
	return music.DeriveParams(c.Metrics, c.SpawnRateMs, c.Gravity)
}
