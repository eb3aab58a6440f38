// Package modes implements the four playable game modes as behavior
// descriptors driving a single shared controller. The controller owns the
// simulation loop (motion, physics, collision dispatch, scheduling); each
// descriptor supplies the mode's movement profile, scenery, spawn waves,
// and event handlers.
package modes

import (
	"github.com/JJC3321/BeatDash/internal/config"
	"github.com/JJC3321/BeatDash/internal/engine"
)

// Behavior describes everything mode-specific about a game mode. The
// shared Controller consults it for movement, spawning, and event
// handling; everything else (integration, collision detection,
// scheduling, scoring plumbing, rendering) is common.
type Behavior struct {
	ID    string
	Title string

	// FreeMove grants four-directional movement with no gravity.
	// Modes without it run under gravity with jump.
	FreeMove bool

	// HorizontalRun allows left/right movement in gravity modes.
	HorizontalRun bool

	// MoveFactor scales the configured player speed.
	MoveFactor float64

	// JumpImpulse is the upward velocity applied on jump (negative is
	// up). Zero disables jumping.
	JumpImpulse float64

	// ScoreTickMs awards ScoreTick points on a repeating interval when
	// positive. Survival-scored modes use this.
	ScoreTickMs float64
	ScoreTick   int

	// Scenery populates the field with fixed geometry and any initial
	// entities at reset.
	Scenery func(c *Controller)

	// SpawnWave runs on every spawn interval.
	SpawnWave func(c *Controller)

	// OnCollision handlers run when the player collides with an entity
	// of the given kind. The handler receives the other entity.
	OnCollision map[engine.Kind]func(c *Controller, other *engine.Entity)

	// OnExit handlers run when a non-player entity of the given kind
	// leaves the field.
	OnExit map[engine.Kind]func(c *Controller, e *engine.Entity)
}

var (
	currentConfig config.GameConfiguration
	configured    bool
)

// SetConfiguration installs the configuration used by every controller
// created afterwards. Call before Reset.
func SetConfiguration(cfg config.GameConfiguration) {
	cfg.Normalize()
	currentConfig = cfg
	configured = true
}

// CurrentConfiguration returns the installed configuration, or the
// built-in default when none has been set.
func CurrentConfiguration() config.GameConfiguration {
	if !configured {
		def := config.DefaultConfiguration()
		def.Normalize()
		return def
	}
	return currentConfig
}

// ForType returns a fresh controller for the given game type. Unknown
// types fall back to the platformer.
func ForType(t config.GameType) *Controller {
	switch t {
	case config.GameTypeDodge:
		return New(dodgeBehavior)
	case config.GameTypeCollector:
		return New(collectorBehavior)
	case config.GameTypeRunner:
		return New(runnerBehavior)
	default:
		return New(platformerBehavior)
	}
}
