// Package physics provides the vector math, line geometry and broad-phase
// structures used by polygon collision.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// PointInPolygon reports whether p lies inside the closed polygon using an
// even-odd crossing count along a horizontal ray.
func PointInPolygon(p Vector2D, polygon []Vector2D) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		// Half-open edges so a vertex on the ray counts once
		if (a.Y <= p.Y && b.Y > p.Y) || (b.Y <= p.Y && a.Y > p.Y) {
			t := (p.Y - a.Y) / (b.Y - a.Y)
			x := a.X + t*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
