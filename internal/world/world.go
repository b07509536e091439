// Package world is the registry that owns every live game entity.
//
// Entities are addressed by generation-checked handles: destroying an entity
// bumps its slot generation, so stale handles never alias a newer entity that
// reuses the slot. Iteration is in slot order, which keeps the simulation
// deterministic for a given sequence of operations.
package world

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Handle identifies an entity in a World.
type Handle struct {
	Index uint32
	Gen   uint32
}

// Nil is the zero handle; it never refers to a live entity.
var Nil Handle

type slot struct {
	gen    uint32
	alive  bool
	entity Entity
}

// World stores entities in reusable slots.
type World struct {
	slots  []slot
	free   []uint32
	counts [kindCount]int
}

// New creates an empty world.
func New() *World {
	return &World{
		slots: make([]slot, 0, 64),
	}
}

// Spawn stores e and returns its handle.
func (w *World) Spawn(e Entity) Handle {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		// Generation starts at 1 so the zero Handle is never valid.
		w.slots = append(w.slots, slot{gen: 1})
	}

	s := &w.slots[idx]
	s.alive = true
	s.entity = e
	w.counts[e.Kind]++
	return Handle{Index: idx, Gen: s.gen}
}

// Get returns a pointer to the live entity for h. The pointer is valid until
// the next Spawn.
func (w *World) Get(h Handle) (*Entity, bool) {
	if !w.Alive(h) {
		return nil, false
	}
	return &w.slots[h.Index].entity, true
}

// Alive reports whether h refers to a live entity.
func (w *World) Alive(h Handle) bool {
	if int(h.Index) >= len(w.slots) {
		return false
	}
	s := &w.slots[h.Index]
	return s.alive && s.gen == h.Gen
}

// Destroy removes the entity immediately. It returns false for stale handles.
func (w *World) Destroy(h Handle) bool {
	if !w.Alive(h) {
		return false
	}
	s := &w.slots[h.Index]
	w.counts[s.entity.Kind]--
	s.alive = false
	s.entity = Entity{}
	s.gen++
	w.free = append(w.free, h.Index)
	return true
}

// Len returns the number of live entities.
func (w *World) Len() int {
	n := 0
	for _, c := range w.counts {
		n += c
	}
	return n
}

// Count returns the number of live entities of a kind.
func (w *World) Count(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return w.counts[k]
}

// Handles returns the handles of every live entity of the given kind in slot
// order. The slice is a snapshot; spawning during iteration does not extend it.
func (w *World) Handles(k Kind) []Handle {
	out := make([]Handle, 0, w.Count(k))
	for i := range w.slots {
		s := &w.slots[i]
		if s.alive && s.entity.Kind == k {
			out = append(out, Handle{Index: uint32(i), Gen: s.gen})
		}
	}
	return out
}

// Colliders returns the handles of every live entity balls can collide with
// (paddle, walls, bricks) in slot order.
func (w *World) Colliders() []Handle {
	out := make([]Handle, 0, w.Count(KindPaddle)+w.Count(KindWall)+w.Count(KindBrick))
	for i := range w.slots {
		s := &w.slots[i]
		if s.alive && s.entity.Kind.Collides() {
			out = append(out, Handle{Index: uint32(i), Gen: s.gen})
		}
	}
	return out
}

// Each calls fn for every live entity in slot order.
func (w *World) Each(fn func(h Handle, e *Entity)) {
	for i := range w.slots {
		s := &w.slots[i]
		if s.alive {
			fn(Handle{Index: uint32(i), Gen: s.gen}, &s.entity)
		}
	}
}

// MarkDespawn sets the pending-despawn flag. It returns true only for the
// call that actually set it, so callers can hang one-shot effects on it.
func (w *World) MarkDespawn(h Handle) bool {
	e, ok := w.Get(h)
	if !ok || !e.Kind.Despawnable() || e.Despawn {
		return false
	}
	e.Despawn = true
	return true
}

// Sweep destroys every entity whose pending-despawn flag is set and returns
// the entities as they were just before removal.
func (w *World) Sweep() []Entity {
	var swept []Entity
	for i := range w.slots {
		s := &w.slots[i]
		if s.alive && s.entity.Despawn {
			swept = append(swept, s.entity)
			w.Destroy(Handle{Index: uint32(i), Gen: s.gen})
		}
	}
	return swept
}

// DestroySession destroys every entity tagged with the given session and
// returns how many were removed.
func (w *World) DestroySession(session uuid.UUID) int {
	n := 0
	for i := range w.slots {
		s := &w.slots[i]
		if s.alive && s.entity.Session == session {
			w.Destroy(Handle{Index: uint32(i), Gen: s.gen})
			n++
		}
	}
	return n
}

// Clear destroys everything.
func (w *World) Clear() {
	for i := range w.slots {
		s := &w.slots[i]
		if s.alive {
			w.Destroy(Handle{Index: uint32(i), Gen: s.gen})
		}
	}
}

// Collidable returns h's entity as a core.Collidable if it is a collision
// target.
func (w *World) Collidable(h Handle) (core.Collidable, bool) {
	e, ok := w.Get(h)
	if !ok || !e.Kind.Collides() {
		return nil, false
	}
	return e, true
}
