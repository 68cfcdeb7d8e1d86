package object

import (
	"slices"

	"github.com/tomz197/polyroids/internal/physics"
)

var bulletOutline = []physics.Vector2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// Bullet is a short-lived shot fired through a Gun.
type Bullet struct {
	*Sprite
	TTL   int  // frames remaining before removal
	Owner *Gun // gun that fired this bullet (for score attribution)
}

func (b *Bullet) Kind() Kind {
	return KindBullet
}

// OwnerKind returns the kind of entity that fired the bullet.
func (b *Bullet) OwnerKind() Kind {
	return b.Owner.Owner
}

// Spent reports whether the bullet has expired or hit something.
func (b *Bullet) Spent() bool {
	return b.TTL <= 0
}

// Expire ends the bullet's life immediately and frees its slot in the gun.
func (b *Bullet) Expire() {
	b.TTL = 0
	b.Owner.release(b)
}

// Update counts down the bullet's lifetime and moves it.
func (b *Bullet) Update(ctx UpdateContext) bool {
	b.TTL--
	if b.TTL <= 0 {
		b.Owner.release(b)
		return true
	}
	b.Move(ctx.Screen)
	return false
}

// Draw skips bullets that were spent earlier in the frame.
func (b *Bullet) Draw(r Renderer) {
	if b.Spent() {
		return
	}
	b.Sprite.Draw(r)
}

// Gun tracks the live bullets of one shooter and enforces its bullet cap.
type Gun struct {
	Owner Kind
	Max   int
	live  []*Bullet
}

// NewGun creates a gun that allows at most max live bullets.
func NewGun(owner Kind, max int) *Gun {
	return &Gun{Owner: owner, Max: max}
}

// Live returns the number of bullets currently in flight.
func (g *Gun) Live() int {
	return len(g.live)
}

// Fire spawns a bullet at origin travelling along heading for ttl frames.
// Returns nil without spawning when the gun is at its cap.
func (g *Gun) Fire(origin, heading physics.Vector2D, ttl int, spawner Spawner) *Bullet {
	if len(g.live) >= g.Max {
		return nil
	}
	b := &Bullet{
		Sprite: MustSprite(origin, heading, bulletOutline, White),
		TTL:    ttl,
		Owner:  g,
	}
	g.live = append(g.live, b)
	if spawner != nil {
		spawner.Spawn(b)
	}
	return b
}

func (g *Gun) release(b *Bullet) {
	if i := slices.Index(g.live, b); i >= 0 {
		g.live = slices.Delete(g.live, i, i+1)
	}
}
