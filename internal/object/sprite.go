package object

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/polyroids/internal/physics"
)

// ErrDegeneratePolygon is returned when an outline has fewer than 3 points.
var ErrDegeneratePolygon = errors.New("polygon needs at least 3 points")

// Sprite is a closed polygon defined in local coordinates, placed in the
// world by rotating about its origin and then translating to Position.
type Sprite struct {
	Position        physics.Vector2D
	Heading         physics.Vector2D // velocity per frame
	Angle           float64          // degrees
	AngularVelocity float64          // degrees per frame
	Color           Color

	points  []physics.Vector2D // local outline, never modified
	outline []physics.Vector2D // world outline from the last transform
	bounds  physics.Rect
}

// NewSprite creates a sprite from a local outline. The outline is copied.
func NewSprite(pos, heading physics.Vector2D, points []physics.Vector2D, c Color) (*Sprite, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("new sprite with %d points: %w", len(points), ErrDegeneratePolygon)
	}
	s := &Sprite{
		Position: pos,
		Heading:  heading,
		Color:    c,
		points:   append([]physics.Vector2D(nil), points...),
		outline:  make([]physics.Vector2D, len(points)),
	}
	s.TransformedOutline()
	return s, nil
}

// MustSprite is like NewSprite but panics on a malformed outline.
// Use it for outlines built from fixed tables.
func MustSprite(pos, heading physics.Vector2D, points []physics.Vector2D, c Color) *Sprite {
	s, err := NewSprite(pos, heading, points, c)
	if err != nil {
		panic(err)
	}
	return s
}

// Body returns the sprite itself.
func (s *Sprite) Body() *Sprite {
	return s
}

// Points returns the local outline. Callers must not modify it.
func (s *Sprite) Points() []physics.Vector2D {
	return s.points
}

// Center returns the sprite's world position.
func (s *Sprite) Center() physics.Vector2D {
	return s.Position
}

// Rotate rotates a local point by the sprite's angle. Positive angles turn
// clockwise in y-up terms, so (10,0) at 90 degrees becomes (0,-10).
func (s *Sprite) Rotate(p physics.Vector2D) physics.Vector2D {
	rad := radians(s.Angle)
	cos, sin := math.Cos(rad), math.Sin(rad)
	return physics.Vector2D{
		X: p.X*cos + p.Y*sin,
		Y: p.Y*cos - p.X*sin,
	}
}

// Translate offsets a point by the sprite's position.
func (s *Sprite) Translate(p physics.Vector2D) physics.Vector2D {
	return p.Add(s.Position)
}

// Scale multiplies a point by f.
func (s *Sprite) Scale(p physics.Vector2D, f float64) physics.Vector2D {
	return p.Scale(f)
}

// TransformedOutline computes the world outline and refreshes the bounding
// region. The returned slice is reused by the next call.
func (s *Sprite) TransformedOutline() []physics.Vector2D {
	for i, p := range s.points {
		s.outline[i] = s.Translate(s.Rotate(p))
	}
	s.bounds = physics.BoundingRect(s.outline)
	return s.outline
}

// Outline returns the world outline computed by the last transform.
func (s *Sprite) Outline() []physics.Vector2D {
	return s.outline
}

// Bounds returns the bounding region computed by the last transform.
func (s *Sprite) Bounds() physics.Rect {
	return s.bounds
}

// Radius returns the distance from the origin to the furthest local point.
func (s *Sprite) Radius() float64 {
	r := 0.0
	for _, p := range s.points {
		r = math.Max(r, p.Magnitude())
	}
	return r
}

// Visible reports whether the sprite should be drawn.
func (s *Sprite) Visible() bool {
	return s.Color != Black
}

// Move advances the sprite by one frame: position by heading, angle by
// angular velocity, then wraps around the world and refreshes the outline.
func (s *Sprite) Move(screen Screen) {
	s.Position = s.Position.Add(s.Heading)
	s.Angle += s.AngularVelocity
	screen.Wrap(&s.Position)
	s.TransformedOutline()
}

// CollidesWith tests the two outlines from their last transform.
// Bounding regions are compared first; overlapping sprites are then tested
// edge against edge. A shape whose bounding region lies entirely inside the
// other's, with no crossing edges, collides if it sits inside the polygon.
func (s *Sprite) CollidesWith(o *Sprite) bool {
	if !s.bounds.Intersects(o.bounds) {
		return false
	}

	a, b := s.outline, o.outline
	for i := range a {
		p1, p2 := a[(i+len(a)-1)%len(a)], a[i]
		for j := range b {
			p3, p4 := b[(j+len(b)-1)%len(b)], b[j]
			if _, ok := physics.SegmentIntersect(p1, p2, p3, p4); ok {
				return true
			}
		}
	}

	if s.bounds.ContainsRect(o.bounds) && physics.PointInPolygon(b[0], a) {
		return true
	}
	if o.bounds.ContainsRect(s.bounds) && physics.PointInPolygon(a[0], b) {
		return true
	}
	return false
}

// Draw recomputes the outline and hands it to the renderer.
// Invisible sprites are transformed but not drawn.
func (s *Sprite) Draw(r Renderer) {
	outline := s.TransformedOutline()
	if !s.Visible() {
		return
	}
	r.DrawPolygon(outline, s.Color)
}

// ScaleOutline returns a scaled copy of a local outline.
func ScaleOutline(points []physics.Vector2D, f float64) []physics.Vector2D {
	scaled := make([]physics.Vector2D, len(points))
	for i, p := range points {
		scaled[i] = p.Scale(f)
	}
	return scaled
}
