package loop

import (
	"testing"

	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

var testSquare = []physics.Vector2D{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}

// testEntity counts updates and releases.
type testEntity struct {
	*object.Sprite
	kind     object.Kind
	remove   bool
	updates  int
	released int
}

func newTestEntity(kind object.Kind) *testEntity {
	return &testEntity{
		Sprite: object.MustSprite(physics.Vector2D{}, physics.Vector2D{}, testSquare, object.White),
		kind:   kind,
	}
}

func (e *testEntity) Kind() object.Kind { return e.kind }

func (e *testEntity) Update(object.UpdateContext) bool {
	e.updates++
	return e.remove
}

func (e *testEntity) Release() { e.released++ }

type polygonCounter struct {
	n int
}

func (c *polygonCounter) DrawPolygon([]physics.Vector2D, object.Color) { c.n++ }

func TestWorldSpawnIsDeferred(t *testing.T) {
	w := NewWorld(object.NewScreen(800, 600))
	e := newTestEntity(object.KindRock)

	w.Spawn(e)
	if w.Count(object.KindRock) != 0 {
		t.Errorf("expected spawn to wait for Flush, got %d rocks", w.Count(object.KindRock))
	}

	w.Flush()
	if w.Count(object.KindRock) != 1 {
		t.Errorf("expected 1 rock after Flush, got %d", w.Count(object.KindRock))
	}
}

func TestWorldKillIsDeferred(t *testing.T) {
	w := NewWorld(object.NewScreen(800, 600))
	e := newTestEntity(object.KindRock)
	w.AddSprite(e)

	w.Kill(e)
	if len(w.Entities()) != 1 {
		t.Errorf("expected killed entity to stay until Flush, got %d entities", len(w.Entities()))
	}
	if !w.Killed(e) {
		t.Error("expected Killed to report the queued removal")
	}
	if w.Count(object.KindRock) != 0 {
		t.Errorf("expected Count to skip killed entities, got %d", w.Count(object.KindRock))
	}

	w.Flush()
	if len(w.Entities()) != 0 {
		t.Errorf("expected no entities after Flush, got %d", len(w.Entities()))
	}
	if w.Killed(e) {
		t.Error("expected removal queue to be cleared by Flush")
	}
	if e.released != 1 {
		t.Errorf("expected entity released once, got %d", e.released)
	}
}

func TestWorldSpawnKilledBeforeFlush(t *testing.T) {
	w := NewWorld(object.NewScreen(800, 600))
	e := newTestEntity(object.KindBullet)

	w.Spawn(e)
	w.Kill(e)
	w.Flush()

	if len(w.Entities()) != 0 {
		t.Errorf("expected killed spawn to never appear, got %d entities", len(w.Entities()))
	}
	if e.released != 1 {
		t.Errorf("expected killed spawn released once, got %d", e.released)
	}
}

func TestWorldAddAndRemoveAreIdempotent(t *testing.T) {
	w := NewWorld(object.NewScreen(800, 600))
	e := newTestEntity(object.KindRock)
	other := newTestEntity(object.KindRock)

	w.AddSprite(e)
	w.AddSprite(e)
	if len(w.Entities()) != 1 {
		t.Errorf("expected duplicate add to be a no-op, got %d entities", len(w.Entities()))
	}

	w.RemoveSprite(other)
	if len(w.Entities()) != 1 || other.released != 0 {
		t.Errorf("expected removing an absent entity to be a no-op, got %d entities, %d releases", len(w.Entities()), other.released)
	}

	w.RemoveSprite(e)
	if len(w.Entities()) != 0 {
		t.Errorf("expected entity removed, got %d entities", len(w.Entities()))
	}
	if e.released != 1 {
		t.Errorf("expected removed entity released, got %d", e.released)
	}
}

func TestWorldMoveAll(t *testing.T) {
	w := NewWorld(object.NewScreen(800, 600))
	stays := newTestEntity(object.KindRock)
	leaves := newTestEntity(object.KindBullet)
	leaves.remove = true
	dead := newTestEntity(object.KindRock)
	w.AddSprite(stays)
	w.AddSprite(leaves)
	w.AddSprite(dead)
	w.Kill(dead)

	w.MoveAll(object.UpdateContext{Screen: w.Screen, Spawner: w})

	if stays.updates != 1 || leaves.updates != 1 {
		t.Errorf("expected live entities updated once, got %d and %d", stays.updates, leaves.updates)
	}
	if dead.updates != 0 {
		t.Errorf("expected killed entity skipped, got %d updates", dead.updates)
	}
	if !w.Killed(leaves) {
		t.Error("expected entity asking for removal to be killed")
	}

	w.Flush()
	if len(w.Entities()) != 1 || w.Entities()[0] != object.Entity(stays) {
		t.Errorf("expected only the staying entity, got %v", w.Entities())
	}
}

func TestWorldEachAndDraw(t *testing.T) {
	w := NewWorld(object.NewScreen(800, 600))
	w.AddSprite(newTestEntity(object.KindRock))
	w.AddSprite(newTestEntity(object.KindRock))
	w.AddSprite(newTestEntity(object.KindBullet))

	seen := 0
	w.Each(object.KindRock, func(e object.Entity) {
		if e.Kind() != object.KindRock {
			t.Errorf("expected only rocks, got %v", e.Kind())
		}
		seen++
	})
	if seen != 2 {
		t.Errorf("expected 2 rocks, got %d", seen)
	}

	var c polygonCounter
	w.DrawAll(&c)
	if c.n != 3 {
		t.Errorf("expected 3 outlines drawn, got %d", c.n)
	}
}

func TestWorldClear(t *testing.T) {
	w := NewWorld(object.NewScreen(800, 600))
	live := newTestEntity(object.KindRock)
	queued := newTestEntity(object.KindRock)
	w.AddSprite(live)
	w.Spawn(queued)

	w.Clear()
	w.Flush()

	if len(w.Entities()) != 0 {
		t.Errorf("expected empty world, got %d entities", len(w.Entities()))
	}
	if live.released != 1 || queued.released != 1 {
		t.Errorf("expected both entities released, got %d and %d", live.released, queued.released)
	}
}
