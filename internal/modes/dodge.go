package modes

import (
	"github.com/JJC3321/BeatDash/internal/core"
	"github.com/JJC3321/BeatDash/internal/engine"
	"github.com/JJC3321/BeatDash/internal/registry"
)

func init() {
	registry.Register(dodgeBehavior.ID, func() registry.Game {
		return New(dodgeBehavior)
	})
}

var dodgeBehavior = Behavior{
	ID:          "dodge",
	Title:       "Beat Dodge",
	FreeMove:    true,
	ScoreTickMs: 500,
	ScoreTick:   1,
	SpawnWave:   dodgeSpawn,
	OnCollision: map[engine.Kind]func(*Controller, *engine.Entity){
		engine.KindHazard: func(c *Controller, other *engine.Entity) {
			c.endGame()
		},
	},
	OnExit: map[engine.Kind]func(*Controller, *engine.Entity){
		engine.KindHazard: func(c *Controller, e *engine.Entity) {
			c.session.AddScore(1)
			e.Kill()
		},
	},
}

// dodgeSpawn drops a hazard from the top edge with a slight horizontal
// drift. Fall speed scales with difficulty and the playlist speed.
func dodgeSpawn(c *Controller) {
	size := 22 + c.rng.Float64()*12
	pos := core.Vec2{X: c.rng.Float64() * (FieldW - size), Y: -size}
	vel := core.Vec2{
		X: (c.rng.Float64()*2 - 1) * 60,
		Y: (100 + 15*float64(c.cfg.Difficulty)) * c.params.SpeedMultiplier,
	}
	c.spawnHazard(pos, vel, size, size)
}
