package physics

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGradient(t *testing.T) {
	m, ok := Gradient(NewVector2D(0, 0), NewVector2D(2, 4))
	if !ok || !approx(m, 2) {
		t.Errorf("expected gradient 2, got %v (ok=%v)", m, ok)
	}

	if _, ok := Gradient(NewVector2D(1, 0), NewVector2D(1, 5)); ok {
		t.Error("expected vertical line to report no gradient")
	}

	// Degenerate segment is treated as vertical
	if _, ok := Gradient(NewVector2D(3, 3), NewVector2D(3, 3)); ok {
		t.Error("expected coincident points to report no gradient")
	}
}

func TestYIntercept(t *testing.T) {
	if b := YIntercept(NewVector2D(2, 5), 2); !approx(b, 1) {
		t.Errorf("expected intercept 1, got %v", b)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Vector2D
		want           []Vector2D
	}{
		{
			name: "crossing diagonals",
			p1:   NewVector2D(0, 0), p2: NewVector2D(2, 2),
			p3: NewVector2D(0, 2), p4: NewVector2D(2, 0),
			want: []Vector2D{{X: 1, Y: 1}},
		},
		{
			name: "parallel",
			p1:   NewVector2D(0, 0), p2: NewVector2D(1, 0),
			p3: NewVector2D(0, 1), p4: NewVector2D(1, 1),
			want: nil,
		},
		{
			name: "coincident",
			p1:   NewVector2D(0, 0), p2: NewVector2D(1, 1),
			p3: NewVector2D(2, 2), p4: NewVector2D(3, 3),
			want: []Vector2D{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
		},
		{
			name: "first vertical",
			p1:   NewVector2D(2, -5), p2: NewVector2D(2, 5),
			p3: NewVector2D(0, 0), p4: NewVector2D(4, 4),
			want: []Vector2D{{X: 2, Y: 2}},
		},
		{
			name: "second vertical",
			p1:   NewVector2D(0, 1), p2: NewVector2D(4, 1),
			p3: NewVector2D(3, 0), p4: NewVector2D(3, 9),
			want: []Vector2D{{X: 3, Y: 1}},
		},
		{
			name: "both vertical same x",
			p1:   NewVector2D(1, 0), p2: NewVector2D(1, 2),
			p3: NewVector2D(1, 5), p4: NewVector2D(1, 9),
			want: []Vector2D{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 1, Y: 5}, {X: 1, Y: 9}},
		},
		{
			name: "both vertical different x",
			p1:   NewVector2D(1, 0), p2: NewVector2D(1, 2),
			p3: NewVector2D(4, 0), p4: NewVector2D(4, 2),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.p1, tt.p2, tt.p3, tt.p4)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d points, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range got {
				if !approx(got[i].X, tt.want[i].X) || !approx(got[i].Y, tt.want[i].Y) {
					t.Errorf("point %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestSegmentIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Vector2D
		hit            bool
		at             Vector2D
	}{
		{
			name: "segments cross",
			p1:   NewVector2D(0, 0), p2: NewVector2D(2, 2),
			p3: NewVector2D(0, 2), p4: NewVector2D(2, 0),
			hit: true, at: NewVector2D(1, 1),
		},
		{
			name: "lines cross beyond the segments",
			p1:   NewVector2D(0, 0), p2: NewVector2D(1, 1),
			p3: NewVector2D(3, 0), p4: NewVector2D(4, -1),
			hit: false,
		},
		{
			name: "collinear overlap",
			p1:   NewVector2D(0, 0), p2: NewVector2D(2, 2),
			p3: NewVector2D(1, 1), p4: NewVector2D(3, 3),
			hit: true, at: NewVector2D(2, 2),
		},
		{
			name: "collinear apart",
			p1:   NewVector2D(0, 0), p2: NewVector2D(1, 1),
			p3: NewVector2D(5, 5), p4: NewVector2D(6, 6),
			hit: false,
		},
		{
			name: "horizontal meets vertical",
			p1:   NewVector2D(0, 1), p2: NewVector2D(4, 1),
			p3: NewVector2D(3, 0), p4: NewVector2D(3, 9),
			hit: true, at: NewVector2D(3, 1),
		},
		{
			name: "parallel",
			p1:   NewVector2D(0, 0), p2: NewVector2D(4, 0),
			p3: NewVector2D(0, 3), p4: NewVector2D(4, 3),
			hit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := SegmentIntersect(tt.p1, tt.p2, tt.p3, tt.p4)
			if ok != tt.hit {
				t.Fatalf("expected hit=%v, got %v", tt.hit, ok)
			}
			if ok && (!approx(p.X, tt.at.X) || !approx(p.Y, tt.at.Y)) {
				t.Errorf("expected intersection at %v, got %v", tt.at, p)
			}
		})
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Vector2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	if !PointInPolygon(NewVector2D(5, 5), square) {
		t.Error("expected centre to be inside")
	}
	if PointInPolygon(NewVector2D(15, 5), square) {
		t.Error("expected point right of square to be outside")
	}
	if PointInPolygon(NewVector2D(5, 5), square[:2]) {
		t.Error("expected degenerate polygon to contain nothing")
	}
}
