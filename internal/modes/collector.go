package modes

import (
	"github.com/JJC3321/BeatDash/internal/core"
	"github.com/JJC3321/BeatDash/internal/engine"
	"github.com/JJC3321/BeatDash/internal/registry"
)

// maxMissed is how many rewards may fall past the player before the
// session ends.
const maxMissed = 10

func init() {
	registry.Register(collectorBehavior.ID, func() registry.Game {
		return New(collectorBehavior)
	})
}

var collectorBehavior = Behavior{
	ID:         "collector",
	Title:      "Beat Collector",
	FreeMove:   true,
	MoveFactor: 0.8,
	SpawnWave:  collectorSpawn,
	OnCollision: map[engine.Kind]func(*Controller, *engine.Entity){
		engine.KindCollectible: func(c *Controller, other *engine.Entity) {
			c.session.AddScore(5)
			other.Kill()
		},
	},
	OnExit: map[engine.Kind]func(*Controller, *engine.Entity){
		engine.KindCollectible: func(c *Controller, e *engine.Entity) {
			e.Kill()
			c.missed++
			if c.missed >= maxMissed {
				c.endGame()
			}
		},
	},
}

// collectorSpawn drops a reward from the top edge.
func collectorSpawn(c *Controller) {
	size := 18.0
	pos := core.Vec2{X: c.rng.Float64() * (FieldW - size), Y: -size}
	vel := core.Vec2{Y: (90 + 10*float64(c.cfg.Difficulty)) * c.params.SpeedMultiplier}
	c.spawnCollectible(pos, vel, size)
}
