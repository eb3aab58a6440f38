package engine

import (
	"github.com/JJC3321/BeatDash/internal/core"
)

// Collision is emitted once per overlap episode between two entities.
type Collision struct {
	A, B *Entity
}

// Exit is emitted once when an entity's bounding box fully leaves the field.
type Exit struct {
	Entity *Entity
}

// TickEvents collects everything the substrate detected during one tick,
// in deterministic order. Mode controllers consume these through per-kind
// dispatch tables instead of per-entity callbacks.
type TickEvents struct {
	Collisions []Collision
	Exits      []Exit
}

type pairKey struct {
	lo, hi int
}

// Field is the bounded 2D area a mode controller simulates within. It owns
// the entity set and all per-episode collision/exit bookkeeping. A field is
// single-owner: only the controlling mode mutates it, always from within
// one tick.
type Field struct {
	W, H float64

	entities    []*Entity
	nextID      int
	overlapping map[pairKey]bool
	exited      map[int]bool
}

// NewField creates an empty play field with the given logical pixel size.
func NewField(w, h float64) *Field {
	return &Field{
		W:           w,
		H:           h,
		overlapping: make(map[pairKey]bool),
		exited:      make(map[int]bool),
	}
}

// Bounds returns the field rectangle.
func (f *Field) Bounds() core.RectF {
	return core.NewRectF(0, 0, f.W, f.H)
}

// Spawn adds an entity to the field and returns it.
func (f *Field) Spawn(e *Entity) *Entity {
	f.nextID++
	e.id = f.nextID
	e.alive = true
	f.entities = append(f.entities, e)
	return e
}

// Entities returns the field's entity list, dead entries included until the
// next Compact. Callers must check Alive when iterating.
func (f *Field) Entities() []*Entity {
	return f.entities
}

// Integrate advances every live non-Fixed entity by
// pos += vel*dt + 0.5*acc*dt^2, then vel += acc*dt.
func (f *Field) Integrate(dt float64) {
	for _, e := range f.entities {
		if !e.alive || e.Class == ClassFixed {
			continue
		}
		e.Pos = e.Pos.Add(e.Vel.Scale(dt)).Add(e.Acc.Scale(0.5 * dt * dt))
		e.Vel = e.Vel.Add(e.Acc.Scale(dt))
	}
}

// Detect finds collisions and field exits for the current positions.
// A collision fires exactly once per overlap episode: entities that stay
// overlapped across ticks produce no repeat events until they separate and
// overlap again. An exit fires exactly once per entity.
func (f *Field) Detect() TickEvents {
	var ev TickEvents

	for i := 0; i < len(f.entities); i++ {
		a := f.entities[i]
		if !a.alive {
			continue
		}
		for j := i + 1; j < len(f.entities); j++ {
			b := f.entities[j]
			if !b.alive {
				continue
			}
			// Fixed entities are targets only, never checked against each other.
			if a.Class == ClassFixed && b.Class == ClassFixed {
				continue
			}

			key := pairKey{lo: core.Min(a.id, b.id), hi: core.Max(a.id, b.id)}
			if a.Bounds().Intersects(b.Bounds()) {
				if !f.overlapping[key] {
					f.overlapping[key] = true
					ev.Collisions = append(ev.Collisions, Collision{A: a, B: b})
				}
			} else {
				delete(f.overlapping, key)
			}
		}
	}

	bounds := f.Bounds()
	for _, e := range f.entities {
		if !e.alive || e.Class == ClassFixed {
			continue
		}
		if e.Bounds().Outside(bounds) && !f.exited[e.id] {
			f.exited[e.id] = true
			ev.Exits = append(ev.Exits, Exit{Entity: e})
		}
	}

	return ev
}

// Step is Integrate followed by Detect, for callers that need no
// intermediate position fix-ups.
func (f *Field) Step(dt float64) TickEvents {
	f.Integrate(dt)
	return f.Detect()
}

// Compact removes killed entities and drops their episode bookkeeping.
// Called once per tick after all handlers have run.
func (f *Field) Compact() {
	live := f.entities[:0]
	for _, e := range f.entities {
		if e.alive {
			live = append(live, e)
			continue
		}
		delete(f.exited, e.id)
		for key := range f.overlapping {
			if key.lo == e.id || key.hi == e.id {
				delete(f.overlapping, key)
			}
		}
	}
	// Zero the tail so removed entities can be collected.
	for i := len(live); i < len(f.entities); i++ {
		f.entities[i] = nil
	}
	f.entities = live
}

// CountKind returns the number of live entities of the given kind.
func (f *Field) CountKind(k Kind) int {
	n := 0
	for _, e := range f.entities {
		if e.alive && e.Kind == k {
			n++
		}
	}
	return n
}
