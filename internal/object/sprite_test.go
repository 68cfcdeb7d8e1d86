package object

import (
	"errors"
	"testing"

	"github.com/tomz197/polyroids/internal/physics"
)

func square(size float64) []physics.Vector2D {
	h := size / 2
	return []physics.Vector2D{{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}}
}

func TestNewSpriteRejectsDegenerateOutline(t *testing.T) {
	_, err := NewSprite(physics.Vector2D{}, physics.Vector2D{}, []physics.Vector2D{{X: 0, Y: 0}, {X: 1, Y: 1}}, White)
	if !errors.Is(err, ErrDegeneratePolygon) {
		t.Errorf("expected ErrDegeneratePolygon, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected MustSprite to panic")
		}
	}()
	MustSprite(physics.Vector2D{}, physics.Vector2D{}, nil, White)
}

func TestNewSpriteCopiesOutline(t *testing.T) {
	points := square(10)
	s := MustSprite(physics.Vector2D{}, physics.Vector2D{}, points, White)
	points[0].X = 99
	if s.Points()[0].X == 99 {
		t.Error("expected sprite to keep its own copy of the outline")
	}
}

func TestRotate(t *testing.T) {
	s := MustSprite(physics.Vector2D{}, physics.Vector2D{}, square(2), White)

	p := s.Rotate(physics.NewVector2D(10, 0))
	if !approx(p.X, 10) || !approx(p.Y, 0) {
		t.Errorf("expected identity at 0 degrees, got %v", p)
	}

	s.Angle = 90
	p = s.Rotate(physics.NewVector2D(10, 0))
	if !approx(p.X, 0) || !approx(p.Y, -10) {
		t.Errorf("expected (0,-10) at 90 degrees, got %v", p)
	}

	s.Angle = 180
	p = s.Rotate(physics.NewVector2D(10, 0))
	if !approx(p.X, -10) || !approx(p.Y, 0) {
		t.Errorf("expected (-10,0) at 180 degrees, got %v", p)
	}
}

func TestTranslateAndScale(t *testing.T) {
	s := MustSprite(physics.NewVector2D(100, 50), physics.Vector2D{}, square(2), White)
	p := s.Translate(physics.NewVector2D(1, 2))
	if p.X != 101 || p.Y != 52 {
		t.Errorf("expected (101,52), got %v", p)
	}
	q := s.Scale(physics.NewVector2D(2, -3), 2.5)
	if q.X != 5 || q.Y != -7.5 {
		t.Errorf("expected (5,-7.5), got %v", q)
	}
}

func TestTransformedOutline(t *testing.T) {
	s := MustSprite(physics.NewVector2D(100, 100), physics.Vector2D{}, square(10), White)
	outline := s.TransformedOutline()
	if len(outline) != 4 {
		t.Fatalf("expected 4 points, got %d", len(outline))
	}
	if outline[0] != physics.NewVector2D(95, 95) || outline[2] != physics.NewVector2D(105, 105) {
		t.Errorf("unexpected outline %v", outline)
	}

	b := s.Bounds()
	if b.MinX != 95 || b.MaxX != 105 || b.MinY != 95 || b.MaxY != 105 {
		t.Errorf("unexpected bounds %+v", b)
	}
}

func TestMoveAdvancesAndRefreshesBounds(t *testing.T) {
	screen := NewScreen(800, 600)
	s := MustSprite(physics.NewVector2D(100, 100), physics.NewVector2D(3, -4), square(10), White)
	s.Move(screen)

	if s.Position != physics.NewVector2D(103, 96) {
		t.Errorf("expected (103,96), got %v", s.Position)
	}
	if b := s.Bounds(); b.MinX != 98 || b.MinY != 91 {
		t.Errorf("expected bounds to follow the move, got %+v", b)
	}
}

func TestMoveWrapsAround(t *testing.T) {
	screen := NewScreen(800, 600)
	s := MustSprite(physics.NewVector2D(799, 300), physics.NewVector2D(2, 0), square(4), White)
	s.Move(screen)
	if s.Position.X != 0 {
		t.Errorf("expected x to wrap to 0, got %v", s.Position.X)
	}

	s.Heading = physics.NewVector2D(0, -301)
	s.Move(screen)
	if s.Position.Y != 600 {
		t.Errorf("expected y to wrap to 600, got %v", s.Position.Y)
	}
}

func TestMoveRotatesInPlace(t *testing.T) {
	screen := NewScreen(800, 600)
	s := MustSprite(physics.NewVector2D(10, 10), physics.Vector2D{}, square(4), White)
	s.AngularVelocity = 5
	s.Move(screen)
	s.Move(screen)
	if s.Angle != 10 {
		t.Errorf("expected angle 10, got %v", s.Angle)
	}
	if s.Position != physics.NewVector2D(10, 10) {
		t.Errorf("expected position unchanged, got %v", s.Position)
	}
}

func TestCollidesWith(t *testing.T) {
	at := func(x, y float64, outline []physics.Vector2D) *Sprite {
		return MustSprite(physics.NewVector2D(x, y), physics.Vector2D{}, outline, White)
	}
	triangle := []physics.Vector2D{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}}

	tests := []struct {
		name string
		a, b *Sprite
		want bool
	}{
		{"overlapping squares", at(100, 100, square(10)), at(105, 105, square(10)), true},
		{"disjoint squares", at(100, 100, square(10)), at(200, 200, square(10)), false},
		{"touching boxes only", at(100, 100, square(10)), at(110, 100, square(10)), false},
		{"small inside large", at(100, 100, square(50)), at(100, 100, square(1)), true},
		{"large around small", at(100, 100, square(1)), at(100, 100, square(50)), true},
		{"inside box but outside polygon", at(0, 0, triangle), at(80, 80, square(1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.CollidesWith(tt.b); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	s := MustSprite(physics.NewVector2D(50, 50), physics.Vector2D{}, square(10), White)
	r := &drawRecorder{}
	s.Draw(r)
	if len(r.polygons) != 1 || len(r.polygons[0]) != 4 {
		t.Fatalf("expected one 4-point polygon, got %v", r.polygons)
	}
	if r.colors[0] != White {
		t.Errorf("expected white, got %v", r.colors[0])
	}

	s.Color = Black
	s.Draw(r)
	if len(r.polygons) != 1 {
		t.Error("expected black sprite not to be drawn")
	}
}

func TestRadius(t *testing.T) {
	s := MustSprite(physics.Vector2D{}, physics.Vector2D{}, []physics.Vector2D{{X: 3, Y: 4}, {X: -1, Y: 0}, {X: 0, Y: 2}}, White)
	if !approx(s.Radius(), 5) {
		t.Errorf("expected radius 5, got %v", s.Radius())
	}
}
