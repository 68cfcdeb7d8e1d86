package physics

import "math"

// minSegmentExtent is the thinnest a segment's bounding box may be when
// testing whether an intersection lies on it. Axis-aligned edges would
// otherwise have a zero-width box that rejects every point.
const minSegmentExtent = 1.0

// Gradient returns the slope of the line through p1 and p2.
// ok is false when the line is vertical (p1.X == p2.X).
func Gradient(p1, p2 Vector2D) (m float64, ok bool) {
	if p1.X == p2.X {
		return 0, false
	}
	return (p2.Y - p1.Y) / (p2.X - p1.X), true
}

// YIntercept returns where the line with gradient m through p crosses x = 0.
func YIntercept(p Vector2D, m float64) float64 {
	return p.Y - m*p.X
}

// Intersect finds where the infinite line through p1,p2 meets the infinite
// line through p3,p4.
//
// It returns a single point for crossing lines, nil for parallel lines, and
// all four input points when the lines are coincident so the caller can
// decide which of them lie on both segments.
func Intersect(p1, p2, p3, p4 Vector2D) []Vector2D {
	m1, ok1 := Gradient(p1, p2)
	m2, ok2 := Gradient(p3, p4)

	switch {
	case ok1 && ok2 && m1 != m2:
		b1 := YIntercept(p1, m1)
		b2 := YIntercept(p3, m2)
		x := (b2 - b1) / (m1 - m2)
		return []Vector2D{{X: x, Y: m1*x + b1}}
	case !ok1 && ok2:
		x := p1.X
		return []Vector2D{{X: x, Y: m2*x + YIntercept(p3, m2)}}
	case ok1 && !ok2:
		x := p3.X
		return []Vector2D{{X: x, Y: m1*x + YIntercept(p1, m1)}}
	case !ok1 && !ok2:
		if p1.X != p3.X {
			return nil
		}
		return []Vector2D{p1, p2, p3, p4}
	default:
		// Equal gradients
		if YIntercept(p1, m1) != YIntercept(p3, m2) {
			return nil
		}
		return []Vector2D{p1, p2, p3, p4}
	}
}

// SegmentIntersect reports the first point returned by Intersect that lies
// within the extents of both segments p1-p2 and p3-p4.
func SegmentIntersect(p1, p2, p3, p4 Vector2D) (Vector2D, bool) {
	candidates := Intersect(p1, p2, p3, p4)
	if len(candidates) == 0 {
		return Vector2D{}, false
	}

	r1 := segmentRect(p1, p2)
	r2 := segmentRect(p3, p4)
	for _, p := range candidates {
		if r1.ContainsPoint(p) && r2.ContainsPoint(p) {
			return p, true
		}
	}
	return Vector2D{}, false
}

func segmentRect(a, b Vector2D) Rect {
	r := Rect{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
	if r.Width() < minSegmentExtent {
		r.MaxX = r.MinX + minSegmentExtent
	}
	if r.Height() < minSegmentExtent {
		r.MaxY = r.MinY + minSegmentExtent
	}
	return r
}
