package engine

import (
	"math"
	"testing"

	"github.com/JJC3321/BeatDash/internal/core"
)

func TestIntegrate(t *testing.T) {
	f := NewField(800, 600)
	e := f.Spawn(&Entity{
		Kind:  KindHazard,
		Class: ClassActive,
		Pos:   core.Vec2{X: 100, Y: 100},
		Vel:   core.Vec2{X: 10, Y: 0},
		Acc:   core.Vec2{X: 0, Y: 800},
		W:     20, H: 20,
	})

	dt := 0.5
	f.Integrate(dt)

	// x: 100 + 10*0.5 = 105; y: 100 + 0 + 0.5*800*0.25 = 200
	if !almostEqual(e.Pos.X, 105) || !almostEqual(e.Pos.Y, 200) {
		t.Errorf("position after integrate = %+v, expected {105 200}", e.Pos)
	}
	// vy: 0 + 800*0.5 = 400
	if !almostEqual(e.Vel.Y, 400) {
		t.Errorf("velocity after integrate = %+v, expected vy=400", e.Vel)
	}
}

func TestFixedEntitiesNeverMove(t *testing.T) {
	f := NewField(800, 600)
	e := f.Spawn(&Entity{
		Kind:  KindGround,
		Class: ClassFixed,
		Pos:   core.Vec2{X: 0, Y: 580},
		Vel:   core.Vec2{X: 50, Y: 50}, // should be ignored
		W:     800, H: 20,
	})

	f.Integrate(1.0)

	if e.Pos.X != 0 || e.Pos.Y != 580 {
		t.Errorf("fixed entity moved to %+v", e.Pos)
	}
}

func TestCollisionFiresOncePerEpisode(t *testing.T) {
	f := NewField(800, 600)
	a := f.Spawn(&Entity{Kind: KindPlayer, Class: ClassActive, Pos: core.Vec2{X: 100, Y: 100}, W: 30, H: 30})
	b := f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, Pos: core.Vec2{X: 110, Y: 110}, W: 30, H: 30})

	total := 0
	// Entities overlap and keep overlapping for several ticks.
	for i := 0; i < 5; i++ {
		ev := f.Detect()
		total += len(ev.Collisions)
	}
	if total != 1 {
		t.Fatalf("continuous overlap produced %d collision events, expected 1", total)
	}

	// Separate, then overlap again: a new episode fires a new event.
	b.Pos = core.Vec2{X: 500, Y: 500}
	if ev := f.Detect(); len(ev.Collisions) != 0 {
		t.Fatal("separated entities should not collide")
	}
	b.Pos = core.Vec2{X: 105, Y: 105}
	ev := f.Detect()
	if len(ev.Collisions) != 1 {
		t.Fatalf("re-overlap produced %d events, expected 1", len(ev.Collisions))
	}
	if ev.Collisions[0].A != a && ev.Collisions[0].B != a {
		t.Error("collision should reference both participants")
	}
}

func TestFixedPairsAreSkipped(t *testing.T) {
	f := NewField(800, 600)
	f.Spawn(&Entity{Kind: KindPlatform, Class: ClassFixed, Pos: core.Vec2{X: 100, Y: 100}, W: 100, H: 20})
	f.Spawn(&Entity{Kind: KindPlatform, Class: ClassFixed, Pos: core.Vec2{X: 120, Y: 100}, W: 100, H: 20})

	ev := f.Detect()
	if len(ev.Collisions) != 0 {
		t.Errorf("overlapping fixed pair produced %d events, expected 0", len(ev.Collisions))
	}
}

func TestActiveVsFixedCollides(t *testing.T) {
	f := NewField(800, 600)
	f.Spawn(&Entity{Kind: KindPlayer, Class: ClassActive, Pos: core.Vec2{X: 100, Y: 95}, W: 30, H: 30})
	f.Spawn(&Entity{Kind: KindPlatform, Class: ClassFixed, Pos: core.Vec2{X: 80, Y: 110}, W: 100, H: 20})

	ev := f.Detect()
	if len(ev.Collisions) != 1 {
		t.Errorf("active vs fixed produced %d events, expected 1", len(ev.Collisions))
	}
}

func TestExitFiresOnce(t *testing.T) {
	f := NewField(800, 600)
	e := f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, Pos: core.Vec2{X: -100, Y: 100}, W: 20, H: 20})

	total := 0
	for i := 0; i < 4; i++ {
		ev := f.Detect()
		total += len(ev.Exits)
		if total > 0 && ev.Exits != nil && ev.Exits[0].Entity != e {
			t.Error("exit should reference the exiting entity")
		}
	}
	if total != 1 {
		t.Errorf("exit fired %d times across ticks, expected exactly 1", total)
	}
}

func TestStraddlingEdgeIsNotAnExit(t *testing.T) {
	f := NewField(800, 600)
	f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, Pos: core.Vec2{X: -10, Y: 100}, W: 20, H: 20})

	ev := f.Detect()
	if len(ev.Exits) != 0 {
		t.Error("partially visible entity must not emit an exit event")
	}
}

func TestKillIsDeferredUntilCompact(t *testing.T) {
	f := NewField(800, 600)
	a := f.Spawn(&Entity{Kind: KindPlayer, Class: ClassActive, Pos: core.Vec2{X: 100, Y: 100}, W: 30, H: 30})
	b := f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, Pos: core.Vec2{X: 110, Y: 110}, W: 30, H: 30})
	c := f.Spawn(&Entity{Kind: KindCollectible, Class: ClassPassive, Pos: core.Vec2{X: 400, Y: 400}, W: 10, H: 10})

	ev := f.Detect()
	if len(ev.Collisions) != 1 {
		t.Fatalf("expected 1 collision, got %d", len(ev.Collisions))
	}

	// Handler kills one participant mid-dispatch; list stays intact.
	b.Kill()
	if len(f.Entities()) != 3 {
		t.Error("kill must not mutate the entity list in place")
	}

	f.Compact()
	if len(f.Entities()) != 2 {
		t.Errorf("after compact expected 2 entities, got %d", len(f.Entities()))
	}
	for _, e := range f.Entities() {
		if e == b {
			t.Error("killed entity survived compaction")
		}
	}
	_ = a
	_ = c
}

func TestDeadEntitiesEmitNoEvents(t *testing.T) {
	f := NewField(800, 600)
	f.Spawn(&Entity{Kind: KindPlayer, Class: ClassActive, Pos: core.Vec2{X: 100, Y: 100}, W: 30, H: 30})
	h := f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, Pos: core.Vec2{X: 110, Y: 110}, W: 30, H: 30})

	h.Kill()
	ev := f.Detect()
	if len(ev.Collisions) != 0 {
		t.Error("dead entity should not generate collision events")
	}
}

func TestReoverlapAfterCompactIsNewEpisode(t *testing.T) {
	f := NewField(800, 600)
	f.Spawn(&Entity{Kind: KindPlayer, Class: ClassActive, Pos: core.Vec2{X: 100, Y: 100}, W: 30, H: 30})
	h := f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, Pos: core.Vec2{X: 110, Y: 110}, W: 30, H: 30})

	if ev := f.Detect(); len(ev.Collisions) != 1 {
		t.Fatal("expected initial collision")
	}
	h.Kill()
	f.Compact()

	// A new hazard spawned at the same spot starts a fresh episode.
	f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, Pos: core.Vec2{X: 110, Y: 110}, W: 30, H: 30})
	if ev := f.Detect(); len(ev.Collisions) != 1 {
		t.Error("new entity overlapping the player should fire a collision")
	}
}

func TestCountKind(t *testing.T) {
	f := NewField(800, 600)
	f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, W: 10, H: 10})
	f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, W: 10, H: 10})
	dead := f.Spawn(&Entity{Kind: KindHazard, Class: ClassActive, W: 10, H: 10})
	dead.Kill()

	if got := f.CountKind(KindHazard); got != 2 {
		t.Errorf("CountKind = %d, expected 2 (dead excluded)", got)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
