package modes

import (
	"math/rand"

	"github.com/JJC3321/BeatDash/internal/config"
	"github.com/JJC3321/BeatDash/internal/core"
	"github.com/JJC3321/BeatDash/internal/engine"
	"github.com/JJC3321/BeatDash/internal/music"
	"github.com/JJC3321/BeatDash/internal/render"
)

// Logical play-field size in pixels. Entity positions and velocities live
// in this space and are scaled down to terminal cells at render time.
const (
	FieldW = 800.0
	FieldH = 600.0

	GroundH    = 40.0
	PlayerSize = 30.0

	// GravityAccel is the base downward acceleration in px/s^2 before the
	// gravity multiplier is applied.
	GravityAccel = 800.0

	// MaxFallSpeed caps downward velocity so the per-tick displacement
	// stays within the platform landing tolerance.
	MaxFallSpeed = 900.0

	landingTolerance = 25.0

	// fallLimit is how far below the field the player may drop before
	// the session ends in gravity modes.
	fallLimit = 100.0
)

// Controller runs one game mode session: it owns the field, scheduler,
// session, and pulse, and drives them through the per-tick pipeline. The
// mode-specific pieces come from its Behavior.
type Controller struct {
	behavior Behavior

	cfg     config.GameConfiguration
	params  music.Params
	runtime core.RuntimeConfig

	field    *engine.Field
	sched    *engine.Scheduler
	session  *engine.Session
	pulse    *engine.BeatPulse
	renderer render.Renderer
	rng      *rand.Rand

	player   *engine.Entity
	grounded bool
	missed   int
	paused   bool

	spawnCount int

	onScore    func(int)
	onGameOver func(int)
}

// New creates a controller for the given behavior. Call Reset before the
// first Step.
func New(b Behavior) *Controller {
	if b.MoveFactor == 0 {
		b.MoveFactor = 1.0
	}
	return &Controller{
		behavior: b,
		renderer: render.SpriteRenderer{},
	}
}

// ID returns the mode identifier.
func (c *Controller) ID() string {
	return c.behavior.ID
}

// Title returns the mode display name.
func (c *Controller) Title() string {
	return c.behavior.Title
}

// SetCallbacks installs the score and game-over listeners. Effective from
// the next Reset.
func (c *Controller) SetCallbacks(onScore, onGameOver func(int)) {
	c.onScore = onScore
	c.onGameOver = onGameOver
}

// Configuration returns the configuration the current session runs under.
func (c *Controller) Configuration() config.GameConfiguration {
	return c.cfg
}

// Params returns the derived simulation parameters for the session.
func (c *Controller) Params() music.Params {
	return c.params
}

// Field exposes the play field for tests.
func (c *Controller) Field() *engine.Field {
	return c.field
}

// Missed returns the count of collectibles that left the field uncaught.
func (c *Controller) Missed() int {
	return c.missed
}

// Reset builds a fresh session from the installed configuration.
func (c *Controller) Reset(rt core.RuntimeConfig) {
	c.runtime = rt
	c.cfg = CurrentConfiguration()
	c.params = c.cfg.Params()

	c.rng = rand.New(rand.NewSource(rt.Seed))
	c.field = engine.NewField(FieldW, FieldH)
	c.sched = engine.NewScheduler()
	c.session = engine.NewSession(
		func(s int) {
			if c.onScore != nil {
				c.onScore(s)
			}
		},
		func(s int) {
			if c.onGameOver != nil {
				c.onGameOver(s)
			}
		},
	)
	// The pulse gets its own RNG stream so shake jitter never perturbs
	// the gameplay spawn sequence.
	c.pulse = engine.NewBeatPulse(c.params.BeatIntervalMs, c.energy(), rand.New(rand.NewSource(rt.Seed+1)))

	c.grounded = false
	c.missed = 0
	c.paused = false
	c.spawnCount = 0

	if c.behavior.Scenery != nil {
		c.behavior.Scenery(c)
	}
	c.spawnPlayer()

	c.sched.Every(c.params.BeatIntervalMs, c.pulse.OnBeat)
	if c.behavior.SpawnWave != nil {
		c.sched.Every(c.params.SpawnIntervalMs, func() {
			if c.session.Terminal() {
				return
			}
			c.behavior.SpawnWave(c)
		})
	}
	if c.behavior.ScoreTickMs > 0 {
		c.sched.Every(c.behavior.ScoreTickMs, func() {
			c.session.AddScore(c.behavior.ScoreTick)
		})
	}
}

// Step advances the session by one fixed tick.
func (c *Controller) Step(in core.InputFrame) core.StepResult {
	if c.session == nil || c.session.Terminal() {
		return core.StepResult{State: c.State()}
	}
	if in.Pressed(core.ActionPause) {
		c.paused = !c.paused
	}
	if c.paused {
		return core.StepResult{State: c.State()}
	}

	tickRate := c.runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultRuntimeConfig().TickRate
	}
	dt := 1.0 / float64(tickRate)
	dtMs := 1000.0 * dt

	c.applyMotion(in)
	c.field.Integrate(dt)
	c.constrainPlayer()

	ev := c.field.Detect()
	c.dispatch(ev)
	c.field.Compact()

	c.sched.Advance(dtMs)
	c.pulse.Advance(dtMs)

	if !c.behavior.FreeMove && c.player.Pos.Y > FieldH+fallLimit {
		c.endGame()
	}

	return core.StepResult{State: c.State()}
}

// State returns the current session state.
func (c *Controller) State() core.GameState {
	st := core.GameState{Paused: c.paused}
	if c.session != nil {
		st.Score = c.session.Score()
		st.GameOver = c.session.Terminal()
	}
	return st
}

func (c *Controller) endGame() {
	c.session.EndGame()
	c.sched.StopAll()
}

func (c *Controller) energy() float64 {
	if c.cfg.Metrics == nil {
		return 0
	}
	return c.cfg.Metrics.AvgEnergy
}

func (c *Controller) spawnPlayer() {
	e := &engine.Entity{
		Kind:   engine.KindPlayer,
		Class:  engine.ClassActive,
		W:      PlayerSize,
		H:      PlayerSize,
		Visual: c.renderer.Render(render.Descriptor{Shape: "square", Color: c.cfg.ColorPalette.Player}, PlayerSize, PlayerSize),
	}
	if c.behavior.FreeMove {
		e.Pos = core.Vec2{X: FieldW/2 - PlayerSize/2, Y: FieldH - GroundH - PlayerSize*3}
	} else {
		e.Pos = core.Vec2{X: 80, Y: FieldH - GroundH - PlayerSize}
		c.grounded = true
	}
	c.player = c.field.Spawn(e)
}

func (c *Controller) applyMotion(in core.InputFrame) {
	p := c.player
	speed := c.cfg.PlayerSpeed * c.behavior.MoveFactor

	if c.behavior.FreeMove {
		var v core.Vec2
		if in.Held(core.ActionLeft) {
			v.X -= speed
		}
		if in.Held(core.ActionRight) {
			v.X += speed
		}
		if in.Held(core.ActionUp) {
			v.Y -= speed
		}
		if in.Held(core.ActionDown) {
			v.Y += speed
		}
		p.Vel = v
		return
	}

	p.Vel.X = 0
	if c.behavior.HorizontalRun {
		if in.Held(core.ActionLeft) {
			p.Vel.X -= speed
		}
		if in.Held(core.ActionRight) {
			p.Vel.X += speed
		}
	}
	p.Acc = core.Vec2{Y: GravityAccel * c.params.GravityMultiplier}
	if in.Pressed(core.ActionJump) && c.grounded && c.behavior.JumpImpulse != 0 {
		p.Vel.Y = c.behavior.JumpImpulse
		c.grounded = false
	}
	if p.Vel.Y > MaxFallSpeed {
		p.Vel.Y = MaxFallSpeed
	}
}

// constrainPlayer applies post-integration position fix-ups: bounds
// clamping and, in gravity modes, landing on ground and platform surfaces.
func (c *Controller) constrainPlayer() {
	p := c.player
	p.Pos.X = core.ClampF(p.Pos.X, 0, FieldW-p.W)

	if c.behavior.FreeMove {
		p.Pos.Y = core.ClampF(p.Pos.Y, 0, FieldH-p.H)
		return
	}

	// Landing only applies while falling so the player can jump up
	// through platform edges.
	if p.Vel.Y < 0 {
		c.grounded = false
		return
	}
	for _, e := range c.field.Entities() {
		if !e.Alive() {
			continue
		}
		if e.Kind != engine.KindGround && e.Kind != engine.KindPlatform {
			continue
		}
		top := e.Pos.Y
		overlapX := p.Pos.X+p.W > e.Pos.X && p.Pos.X < e.Pos.X+e.W
		if overlapX && p.Pos.Y+p.H >= top && p.Pos.Y+p.H <= top+landingTolerance {
			p.Pos.Y = top - p.H
			p.Vel.Y = 0
			c.grounded = true
			return
		}
	}
	c.grounded = false
}

// dispatch routes collision and exit events through the behavior's
// handler tables. Only collisions involving the player are dispatched;
// scenery-on-scenery contacts carry no gameplay meaning.
func (c *Controller) dispatch(ev engine.TickEvents) {
	for _, col := range ev.Collisions {
		if c.session.Terminal() {
			return
		}
		var other *engine.Entity
		switch {
		case col.A == c.player:
			other = col.B
		case col.B == c.player:
			other = col.A
		default:
			continue
		}
		if h := c.behavior.OnCollision[other.Kind]; h != nil {
			h(c, other)
		}
	}
	for _, ex := range ev.Exits {
		if c.session.Terminal() {
			return
		}
		if ex.Entity == c.player {
			continue
		}
		if h := c.behavior.OnExit[ex.Entity.Kind]; h != nil {
			h(c, ex.Entity)
		}
	}
}

// hazardDescriptor cycles through the configured enemy types so mixed
// enemy sets show up in spawn order.
func (c *Controller) hazardDescriptor() render.Descriptor {
	types := c.cfg.EnemyTypes
	if len(types) == 0 {
		return render.Descriptor{Shape: "spike", Color: c.cfg.ColorPalette.Hazard}
	}
	d := types[c.spawnCount%len(types)]
	c.spawnCount++
	if d.Color == "" {
		d.Color = c.cfg.ColorPalette.Hazard
	}
	return d
}

func (c *Controller) spawnHazard(pos, vel core.Vec2, w, h float64) *engine.Entity {
	return c.field.Spawn(&engine.Entity{
		Kind:   engine.KindHazard,
		Class:  engine.ClassActive,
		Pos:    pos,
		Vel:    vel,
		W:      w,
		H:      h,
		Visual: c.renderer.Render(c.hazardDescriptor(), w, h),
	})
}

func (c *Controller) spawnCollectible(pos, vel core.Vec2, size float64) *engine.Entity {
	return c.field.Spawn(&engine.Entity{
		Kind:   engine.KindCollectible,
		Class:  engine.ClassPassive,
		Pos:    pos,
		Vel:    vel,
		W:      size,
		H:      size,
		Visual: c.renderer.Render(render.Descriptor{Shape: "coin", Color: c.cfg.ColorPalette.Collectible}, size, size),
	})
}

func (c *Controller) spawnFixed(kind engine.Kind, shape string, pos core.Vec2, w, h float64) *engine.Entity {
	color := c.cfg.ColorPalette.Ground
	return c.field.Spawn(&engine.Entity{
		Kind:   kind,
		Class:  engine.ClassFixed,
		Pos:    pos,
		W:      w,
		H:      h,
		Visual: c.renderer.Render(render.Descriptor{Shape: shape, Color: color}, w, h),
	})
}
