// Package object holds the polygon sprites that populate the playfield:
// the ship, rocks, saucers, bullets and explosion debris.
package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/polyroids/internal/physics"
)

// Kind tags each entity so collision and scoring rules can dispatch on it.
type Kind int

const (
	KindShip Kind = iota
	KindRock
	KindSaucer
	KindBullet
	KindDebris
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindRock:
		return "rock"
	case KindSaucer:
		return "saucer"
	case KindBullet:
		return "bullet"
	case KindDebris:
		return "debris"
	default:
		return "unknown"
	}
}

// Spawner allows entities to add new entities during update.
type Spawner interface {
	Spawn(e Entity)
}

// Renderer draws a closed outline in world coordinates.
type Renderer interface {
	DrawPolygon(points []physics.Vector2D, c Color)
}

// UpdateContext provides what an entity needs during its per-frame update.
type UpdateContext struct {
	Screen  Screen
	Spawner Spawner
	Rand    *rand.Rand
}

// Entity is a drawable and updatable playfield object.
type Entity interface {
	Kind() Kind
	// Body returns the entity's polygon.
	Body() *Sprite
	// Update applies one frame of the entity's own rules and movement.
	// Returns true if the entity should be removed.
	Update(ctx UpdateContext) (remove bool)
	Draw(r Renderer)
}

// Target is what a saucer aims at.
type Target interface {
	Center() physics.Vector2D
	Collidable() bool
}

// Releasable is implemented by pooled entities that can be returned to a pool.
type Releasable interface {
	// Release returns the entity to its pool for reuse.
	Release()
}

// ReleaseEntity releases an entity back to its pool if it implements Releasable.
func ReleaseEntity(e Entity) {
	if r, ok := e.(Releasable); ok {
		r.Release()
	}
}

// Screen holds the world dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a Screen with its centre precomputed.
func NewScreen(width, height int) Screen {
	return Screen{Width: width, Height: height, CenterX: width / 2, CenterY: height / 2}
}

// Center returns the middle of the world.
func (s Screen) Center() physics.Vector2D {
	return physics.NewVector2D(float64(s.Width)/2, float64(s.Height)/2)
}

// Wrap moves a position that has left the world to the opposite edge.
// Each axis is handled independently and lands exactly on the edge
// (x > width becomes 0, x < 0 becomes width).
func (s Screen) Wrap(p *physics.Vector2D) {
	w := float64(s.Width)
	h := float64(s.Height)

	if p.X > w {
		p.X = 0
	} else if p.X < 0 {
		p.X = w
	}
	if p.Y > h {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = h
	}
}

// RandomPosition returns a uniformly random point inside the world.
func (s Screen) RandomPosition(rng *rand.Rand) physics.Vector2D {
	return physics.NewVector2D(rng.Float64()*float64(s.Width), rng.Float64()*float64(s.Height))
}

// Color is an RGB outline colour. It satisfies image/color.Color so
// renderers can hand it straight to drawing libraries.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// RGBA implements color.Color. Colours are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// radians converts an angle in degrees.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// facing returns the vector of length mag pointing along angle, where
// angle 0 points up the screen and positive angles turn left.
func facing(angle, mag float64) physics.Vector2D {
	rad := radians(angle)
	return physics.NewVector2D(-mag*math.Sin(rad), -mag*math.Cos(rad))
}
