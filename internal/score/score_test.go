package score

import "testing"

func TestNewBoard(t *testing.T) {
	b := New(3)
	if b.Score() != 0 || b.Lives() != 3 {
		t.Errorf("expected score 0 lives 3, got %d %d", b.Score(), b.Lives())
	}
}

func TestAddAwardsExtraLives(t *testing.T) {
	tests := []struct {
		name   string
		awards []int
		earned int
		score  int
	}{
		{"below threshold", []int{9950}, 0, 9950},
		{"exactly on threshold", []int{9950, 50}, 1, 10000},
		{"crossing once", []int{9950, 200}, 1, 10150},
		{"crossing twice in one award", []int{500, 20000}, 2, 20500},
		{"no repeat after crossing", []int{10000, 50, 50}, 1, 10100},
		{"ignores non-positive points", []int{0, -100}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(3)
			earned := 0
			for _, p := range tt.awards {
				earned += b.Add(p)
			}
			if earned != tt.earned {
				t.Errorf("expected %d extra lives, got %d", tt.earned, earned)
			}
			if b.Score() != tt.score {
				t.Errorf("expected score %d, got %d", tt.score, b.Score())
			}
			if b.Lives() != 3+tt.earned {
				t.Errorf("expected %d lives, got %d", 3+tt.earned, b.Lives())
			}
		})
	}
}

func TestLoseLife(t *testing.T) {
	b := New(2)
	if !b.LoseLife() {
		t.Error("expected a life to remain")
	}
	if b.LoseLife() {
		t.Error("expected no lives to remain")
	}
	if b.LoseLife() || b.Lives() != 0 {
		t.Errorf("expected lives to stay at 0, got %d", b.Lives())
	}
}

func TestReset(t *testing.T) {
	b := New(3)
	b.Add(15000)
	b.LoseLife()
	b.Reset(5)
	if b.Score() != 0 || b.Lives() != 5 {
		t.Errorf("expected fresh board, got score %d lives %d", b.Score(), b.Lives())
	}
	if b.Add(10000) != 1 {
		t.Error("expected threshold to reset")
	}
}
