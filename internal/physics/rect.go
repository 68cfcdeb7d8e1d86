package physics

// Rect is an axis-aligned bounding box in world coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundingRect returns the smallest Rect enclosing points.
// An empty slice yields the zero Rect.
func BoundingRect(points []Vector2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}
	return r
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Intersects reports whether the two boxes overlap. Boxes that only touch
// along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.MinX >= o.MaxX || o.MinX >= r.MaxX {
		return false
	}
	if r.MinY >= o.MaxY || o.MinY >= r.MaxY {
		return false
	}
	return true
}

// ContainsPoint reports whether p lies inside or on the boundary of r.
func (r Rect) ContainsPoint(p Vector2D) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX >= r.MinX && o.MaxX <= r.MaxX && o.MinY >= r.MinY && o.MaxY <= r.MaxY
}
