package object

import (
	"math/rand"

	"github.com/tomz197/polyroids/internal/physics"
)

// RockSize represents the size tier of a rock.
type RockSize int

const (
	RockLarge RockSize = iota
	RockMedium
	RockSmall
)

func (s RockSize) String() string {
	switch s {
	case RockLarge:
		return "large"
	case RockMedium:
		return "medium"
	case RockSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Per-tier properties, indexed by RockSize.
var (
	rockSpeeds = [...]float64{1.5, 3.0, 4.5}
	rockScales = [...]float64{2.5, 1.5, 0.6}
	rockScores = [...]int{50, 100, 200}
)

// rockShapes are the outline variants, before scaling.
var rockShapes = [...][]physics.Vector2D{
	{{X: -4, Y: -12}, {X: 6, Y: -12}, {X: 13, Y: -4}, {X: 13, Y: 5}, {X: 6, Y: 13}, {X: 0, Y: 13}, {X: 0, Y: 4}, {X: -8, Y: 13}, {X: -15, Y: 4}, {X: -7, Y: 1}, {X: -15, Y: -3}},
	{{X: -6, Y: -12}, {X: 1, Y: -5}, {X: 8, Y: -12}, {X: 15, Y: -5}, {X: 12, Y: 0}, {X: 15, Y: 6}, {X: 5, Y: 13}, {X: -7, Y: 13}, {X: -14, Y: 7}, {X: -14, Y: -5}},
	{{X: -7, Y: -12}, {X: 1, Y: -9}, {X: 8, Y: -12}, {X: 15, Y: -5}, {X: 8, Y: -3}, {X: 15, Y: 4}, {X: 8, Y: 12}, {X: -3, Y: 10}, {X: -6, Y: 12}, {X: -14, Y: 7}, {X: -10, Y: 0}, {X: -14, Y: -5}},
	{{X: -7, Y: -11}, {X: 3, Y: -11}, {X: 13, Y: -5}, {X: 13, Y: -2}, {X: 2, Y: 2}, {X: 13, Y: 8}, {X: 6, Y: 14}, {X: 2, Y: 10}, {X: -7, Y: 14}, {X: -15, Y: 5}, {X: -15, Y: -5}},
}

// RockShapes is the number of outline variants.
const RockShapes = len(rockShapes)

// ShapeCycle hands out rock outline variants in rotation so consecutive
// rocks look different.
type ShapeCycle struct {
	next int
}

// Next returns the next variant index in [0, RockShapes).
func (c *ShapeCycle) Next() int {
	i := c.next
	c.next = (c.next + 1) % RockShapes
	return i
}

// Rock is a tumbling, splittable space rock.
type Rock struct {
	*Sprite
	Size  RockSize
	Shape int
}

// NewRock creates a rock of the given size and outline variant at pos,
// drifting in a random direction at the tier's speed and spinning slowly
// from a random starting angle. Neither heading component nor the spin is
// ever exactly zero.
func NewRock(pos physics.Vector2D, size RockSize, shape int, rng *rand.Rand) *Rock {
	shape = ((shape % RockShapes) + RockShapes) % RockShapes
	speed := rockSpeeds[size]

	heading := physics.NewVector2D(
		nonZero(rng.Float64()*2*speed-speed),
		nonZero(rng.Float64()*2*speed-speed),
	)

	sprite := MustSprite(pos, heading, ScaleOutline(rockShapes[shape], rockScales[size]), White)
	sprite.AngularVelocity = nonZero(rng.Float64()*2 - 1)
	sprite.Angle = rng.Float64() * 360
	sprite.TransformedOutline()

	return &Rock{Sprite: sprite, Size: size, Shape: shape}
}

func (r *Rock) Kind() Kind {
	return KindRock
}

// Score returns the points for destroying the rock.
func (r *Rock) Score() int {
	return rockScores[r.Size]
}

// Split returns the two rocks of the next smaller tier that replace this
// one, or nil for a small rock.
func (r *Rock) Split(cycle *ShapeCycle, rng *rand.Rand) []*Rock {
	if r.Size == RockSmall {
		return nil
	}
	child := r.Size + 1
	return []*Rock{
		NewRock(r.Position, child, cycle.Next(), rng),
		NewRock(r.Position, child, cycle.Next(), rng),
	}
}

// Update moves and spins the rock.
func (r *Rock) Update(ctx UpdateContext) bool {
	r.Move(ctx.Screen)
	return false
}

// RockRadius returns the bounding radius of the largest outline at the
// given size.
func RockRadius(size RockSize) float64 {
	r := 0.0
	for _, shape := range rockShapes {
		for _, p := range shape {
			r = max(r, p.Magnitude())
		}
	}
	return r * rockScales[size]
}

// nonZero nudges an exact zero so rocks never sit still or travel along
// a perfectly straight axis.
func nonZero(v float64) float64 {
	if v == 0 {
		return 0.1
	}
	return v
}
