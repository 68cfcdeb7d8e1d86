package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/polyroids/internal/physics"
)

var debrisOutline = []physics.Vector2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// debrisPool is a sync.Pool for reusing Debris fragments to reduce allocations.
var debrisPool = sync.Pool{
	New: func() any {
		return &Debris{Sprite: MustSprite(physics.Vector2D{}, physics.Vector2D{}, debrisOutline, White)}
	},
}

// Debris is a short-lived explosion fragment. It never collides.
type Debris struct {
	*Sprite
	TTL int
}

// NewDebris takes a fragment from the pool.
func NewDebris(pos, heading physics.Vector2D, ttl int) *Debris {
	d := debrisPool.Get().(*Debris)
	d.Position = pos
	d.Heading = heading
	d.Angle = 0
	d.AngularVelocity = 0
	d.Color = White
	d.TTL = ttl
	d.TransformedOutline()
	return d
}

// Release returns the fragment to the pool for reuse.
// Should be called when the fragment is removed from the world.
func (d *Debris) Release() {
	debrisPool.Put(d)
}

func (d *Debris) Kind() Kind {
	return KindDebris
}

// Update moves the fragment and counts down its lifetime.
func (d *Debris) Update(ctx UpdateContext) bool {
	d.TTL--
	if d.TTL <= 0 {
		return true
	}
	d.Move(ctx.Screen)
	return false
}

// SpawnExplosion scatters count fragments from pos in random directions.
// Speeds vary from 50% to 150% of speed and lifetimes from 50% to 100% of ttl.
func SpawnExplosion(pos physics.Vector2D, count int, speed float64, ttl int, rng *rand.Rand, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rng.Float64())
		life := max(int(float64(ttl)*(0.5+rng.Float64()*0.5)), 1)

		heading := physics.NewVector2D(math.Cos(angle)*spd, math.Sin(angle)*spd)
		spawner.Spawn(NewDebris(pos, heading, life))
	}
}
