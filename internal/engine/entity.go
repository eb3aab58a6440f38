// Package engine provides the generic simulation substrate shared by all
// game modes: velocity/acceleration-driven entities, axis-aligned collision
// detection with per-episode event emission, field-exit detection, repeating
// scheduled events, the score/game-over session, and the cosmetic beat
// pulse. Everything advances on a fixed tick with no internal clock, so the
// whole package runs headless and deterministic under test.
package engine

import (
	"github.com/JJC3321/BeatDash/internal/core"
	"github.com/JJC3321/BeatDash/internal/render"
)

// Kind classifies what an entity is to gameplay rules.
type Kind int

const (
	KindPlayer Kind = iota
	KindHazard
	KindCollectible
	KindPlatform
	KindGround
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindHazard:
		return "hazard"
	case KindCollectible:
		return "collectible"
	case KindPlatform:
		return "platform"
	case KindGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Class is an entity's physical interaction class. Active entities move and
// generate collision events against others; Passive entities generate
// events but are never displaced; Fixed entities never move and only serve
// as collision targets.
type Class int

const (
	ClassActive Class = iota
	ClassPassive
	ClassFixed
)

// Entity is a simulated object inside a play field. Position, velocity and
// acceleration are in play-field pixels; the visual handle is opaque to the
// engine and only handed back at draw time.
type Entity struct {
	id    int
	alive bool

	Kind  Kind
	Class Class
	Pos   core.Vec2
	Vel   core.Vec2
	Acc   core.Vec2
	W, H  float64

	Visual render.Handle
}

// ID returns the field-assigned entity identifier.
func (e *Entity) ID() int {
	return e.id
}

// Alive reports whether the entity is still part of the simulation.
func (e *Entity) Alive() bool {
	return e.alive
}

// Kill marks the entity for removal. The entity stays in place for the
// remainder of the current tick's handler dispatch and is compacted out
// before the next integration pass, so killing from inside a handler never
// disrupts iteration.
func (e *Entity) Kill() {
	e.alive = false
}

// Bounds returns the entity's axis-aligned bounding box.
func (e *Entity) Bounds() core.RectF {
	return core.NewRectF(e.Pos.X, e.Pos.Y, e.W, e.H)
}
