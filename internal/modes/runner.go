package modes

import (
	"github.com/JJC3321/BeatDash/internal/core"
	"github.com/JJC3321/BeatDash/internal/engine"
	"github.com/JJC3321/BeatDash/internal/registry"
)

func init() {
	registry.Register(runnerBehavior.ID, func() registry.Game {
		return New(runnerBehavior)
	})
}

var runnerBehavior = Behavior{
	ID:          "runner",
	Title:       "Beat Runner",
	JumpImpulse: -450,
	ScoreTickMs: 300,
	ScoreTick:   1,
	Scenery:     runnerScenery,
	SpawnWave:   runnerSpawn,
	OnCollision: map[engine.Kind]func(*Controller, *engine.Entity){
		engine.KindHazard: func(c *Controller, other *engine.Entity) {
			c.endGame()
		},
	},
	OnExit: map[engine.Kind]func(*Controller, *engine.Entity){
		engine.KindHazard: func(c *Controller, e *engine.Entity) {
			c.session.AddScore(10)
			e.Kill()
		},
	},
}

// runnerScenery lays a single solid ground strip across the field.
func runnerScenery(c *Controller) {
	c.spawnFixed(engine.KindGround, "block", core.Vec2{X: 0, Y: FieldH - GroundH}, FieldW, GroundH)
}

// runnerSpawn pushes an obstacle in from the right along the ground. The
// player cannot run, only jump over them.
func runnerSpawn(c *Controller) {
	h := 20 + c.rng.Float64()*40
	w := 20 + c.rng.Float64()*15
	pos := core.Vec2{X: FieldW, Y: FieldH - GroundH - h}
	vel := core.Vec2{X: -c.cfg.PlayerSpeed * c.params.SpeedMultiplier}
	c.spawnHazard(pos, vel, w, h)
}
