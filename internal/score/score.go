// Package score tracks the player's points and remaining lives.
package score

// ExtraLifeStep is the number of points between extra lives.
const ExtraLifeStep = 10000

// Board holds the running score and lives of one session.
type Board struct {
	score    int
	lives    int
	nextLife int
}

// New creates a board with the given number of lives.
func New(lives int) *Board {
	return &Board{lives: lives, nextLife: ExtraLifeStep}
}

// Add adds points to the score and returns the number of extra lives
// earned. Every multiple of ExtraLifeStep awards exactly one life, even
// when a single award crosses several of them.
func (b *Board) Add(points int) int {
	if points <= 0 {
		return 0
	}
	b.score += points

	earned := 0
	for b.score >= b.nextLife {
		earned++
		b.nextLife += ExtraLifeStep
	}
	b.lives += earned
	return earned
}

// LoseLife removes one life and reports whether any remain.
func (b *Board) LoseLife() bool {
	if b.lives > 0 {
		b.lives--
	}
	return b.lives > 0
}

func (b *Board) Score() int {
	return b.score
}

func (b *Board) Lives() int {
	return b.lives
}

// Reset starts a new session with the given number of lives.
func (b *Board) Reset(lives int) {
	*b = Board{lives: lives, nextLife: ExtraLifeStep}
}
