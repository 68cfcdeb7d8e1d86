package object

import (
	"math/rand"

	"github.com/tomz197/polyroids/internal/physics"
)

// EdgePosition returns a random point on one of the four world edges.
func EdgePosition(screen Screen, rng *rand.Rand) physics.Vector2D {
	w := float64(screen.Width)
	h := float64(screen.Height)

	switch rng.Intn(4) {
	case 0: // Top
		return physics.NewVector2D(rng.Float64()*w, 0)
	case 1: // Bottom
		return physics.NewVector2D(rng.Float64()*w, h)
	case 2: // Left
		return physics.NewVector2D(0, rng.Float64()*h)
	default: // Right
		return physics.NewVector2D(w, rng.Float64()*h)
	}
}

// SpawnWave creates count large rocks on the world edges, cycling through
// the outline variants.
func SpawnWave(screen Screen, count int, cycle *ShapeCycle, rng *rand.Rand) []*Rock {
	rocks := make([]*Rock, 0, count)
	for i := 0; i < count; i++ {
		rocks = append(rocks, NewRock(EdgePosition(screen, rng), RockLarge, cycle.Next(), rng))
	}
	return rocks
}
