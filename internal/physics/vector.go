package physics

import "math"

// Vector2D is a 2D point or velocity. Fields are mutated in place by sprites
// (position, heading) while the helper methods return new values.
type Vector2D struct {
	X, Y float64
}

// NewVector2D creates a vector from its components.
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Magnitude returns the length of the vector.
func (v Vector2D) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points.
func (v Vector2D) Distance(o Vector2D) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by f.
func (v Vector2D) Scale(f float64) Vector2D {
	return Vector2D{X: v.X * f, Y: v.Y * f}
}
