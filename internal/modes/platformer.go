package modes

import (
	"github.com/JJC3321/BeatDash/internal/core"
	"github.com/JJC3321/BeatDash/internal/engine"
	"github.com/JJC3321/BeatDash/internal/registry"
)

func init() {
	registry.Register(platformerBehavior.ID, func() registry.Game {
		return New(platformerBehavior)
	})
}

var platformerBehavior = Behavior{
	ID:            "platformer",
	Title:         "Beat Platformer",
	HorizontalRun: true,
	JumpImpulse:   -500,
	Scenery:       platformerScenery,
	SpawnWave:     platformerSpawn,
	OnCollision: map[engine.Kind]func(*Controller, *engine.Entity){
		engine.KindCollectible: func(c *Controller, other *engine.Entity) {
			c.session.AddScore(10)
			other.Kill()
		},
		engine.KindHazard: func(c *Controller, other *engine.Entity) {
			c.endGame()
		},
	},
	OnExit: map[engine.Kind]func(*Controller, *engine.Entity){
		engine.KindHazard: func(c *Controller, e *engine.Entity) {
			c.session.AddScore(5)
			e.Kill()
		},
	},
}

// platformerScenery lays out ground segments with jumpable gaps, a few
// elevated platforms, and an initial scatter of collectibles.
func platformerScenery(c *Controller) {
	groundY := FieldH - GroundH

	x := 0.0
	for x < FieldW {
		segW := 120 + c.rng.Float64()*140
		if x+segW > FieldW {
			segW = FieldW - x
		}
		c.spawnFixed(engine.KindGround, "block", core.Vec2{X: x, Y: groundY}, segW, GroundH)
		x += segW
		// Gap narrow enough to clear at minimum speed and heaviest gravity.
		x += 60 + c.rng.Float64()*40
	}

	platforms := 3 + c.rng.Intn(3)
	for i := 0; i < platforms; i++ {
		pw := 80 + c.rng.Float64()*70
		px := c.rng.Float64() * (FieldW - pw)
		py := 350 + c.rng.Float64()*130
		c.spawnFixed(engine.KindPlatform, "block", core.Vec2{X: px, Y: py}, pw, 15)
	}

	for i := 0; i < 5; i++ {
		size := 18.0
		cx := c.rng.Float64() * (FieldW - size)
		cy := 250 + c.rng.Float64()*200
		c.spawnCollectible(core.Vec2{X: cx, Y: cy}, core.Vec2{}, size)
	}
}

// platformerSpawn sends a hazard sliding in from the right at ground level.
func platformerSpawn(c *Controller) {
	h := 22 + c.rng.Float64()*14
	w := 20 + c.rng.Float64()*10
	pos := core.Vec2{X: FieldW, Y: FieldH - GroundH - h}
	vel := core.Vec2{X: -c.cfg.PlayerSpeed * 0.8 * c.params.SpeedMultiplier}
	c.spawnHazard(pos, vel, w, h)
}
