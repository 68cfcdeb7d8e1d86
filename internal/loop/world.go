package loop

import (
	"slices"

	"github.com/tomz197/polyroids/internal/object"
)

// World is the stage holding every live entity. Changes requested while
// iterating are queued and applied by Flush.
type World struct {
	Screen   object.Screen
	entities []object.Entity
	toSpawn  []object.Entity            // Entities to add at the next Flush
	toRemove map[object.Entity]struct{} // Entities to drop at the next Flush
}

// NewWorld creates an empty world of the given size.
func NewWorld(screen object.Screen) *World {
	return &World{
		Screen:   screen,
		toRemove: make(map[object.Entity]struct{}),
	}
}

// AddSprite adds e immediately. Adding an entity already present is a no-op.
func (w *World) AddSprite(e object.Entity) {
	if slices.Contains(w.entities, e) {
		return
	}
	w.entities = append(w.entities, e)
}

// RemoveSprite removes e immediately. Removing an absent entity is a no-op.
func (w *World) RemoveSprite(e object.Entity) {
	if i := slices.Index(w.entities, e); i >= 0 {
		w.entities = slices.Delete(w.entities, i, i+1)
		object.ReleaseEntity(e)
	}
}

// Spawn queues an entity to be added at the next Flush.
// Implements object.Spawner interface.
func (w *World) Spawn(e object.Entity) {
	w.toSpawn = append(w.toSpawn, e)
}

// Kill queues an entity for removal at the next Flush.
func (w *World) Kill(e object.Entity) {
	w.toRemove[e] = struct{}{}
}

// Killed reports whether e is queued for removal.
func (w *World) Killed(e object.Entity) bool {
	_, ok := w.toRemove[e]
	return ok
}

// Flush removes killed entities, releasing pooled ones, then adds the
// queued spawns. A spawn killed before it was flushed never appears.
func (w *World) Flush() {
	if len(w.toRemove) > 0 {
		w.entities = w.drop(w.entities)
		w.toSpawn = w.drop(w.toSpawn)
		clear(w.toRemove)
	}

	for _, e := range w.toSpawn {
		w.AddSprite(e)
	}
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// drop filters killed entities out of list in place.
func (w *World) drop(list []object.Entity) []object.Entity {
	kept := list[:0]
	for _, e := range list {
		if _, dead := w.toRemove[e]; dead {
			object.ReleaseEntity(e)
			continue
		}
		kept = append(kept, e)
	}
	clear(list[len(kept):])
	return kept
}

// MoveAll runs one frame of every entity's own rules and movement.
// Entities that ask to be removed are killed.
func (w *World) MoveAll(ctx object.UpdateContext) {
	for _, e := range w.entities {
		if w.Killed(e) {
			continue
		}
		if e.Update(ctx) {
			w.Kill(e)
		}
	}
}

// DrawAll draws every live entity in insertion order.
func (w *World) DrawAll(r object.Renderer) {
	for _, e := range w.entities {
		e.Draw(r)
	}
}

// Each calls fn for every live entity of the given kind that is not
// queued for removal.
func (w *World) Each(kind object.Kind, fn func(e object.Entity)) {
	for _, e := range w.entities {
		if e.Kind() == kind && !w.Killed(e) {
			fn(e)
		}
	}
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(kind object.Kind) int {
	n := 0
	w.Each(kind, func(object.Entity) { n++ })
	return n
}

// Entities returns the live entities. Callers must not modify the slice.
func (w *World) Entities() []object.Entity {
	return w.entities
}

// Clear removes every entity, including queued spawns.
func (w *World) Clear() {
	for _, e := range w.entities {
		object.ReleaseEntity(e)
	}
	for _, e := range w.toSpawn {
		object.ReleaseEntity(e)
	}
	clear(w.entities)
	w.entities = w.entities[:0]
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
	clear(w.toRemove)
}
