package loop

import (
	"github.com/tomz197/polyroids/internal/audio"
	"github.com/tomz197/polyroids/internal/loop/config"
	"github.com/tomz197/polyroids/internal/object"
)

// rockExplosions maps a rock size to its explosion sound.
var rockExplosions = [...]string{audio.Explode1, audio.Explode2, audio.Explode3}

// collectCollidables gathers rocks and live bullets into the reused caches
// and indexes the rocks in the spatial grid.
func (g *Game) collectCollidables() {
	g.rocks = g.rocks[:0]
	g.bullets = g.bullets[:0]

	for _, e := range g.world.Entities() {
		if g.world.Killed(e) {
			continue
		}
		switch o := e.(type) {
		case *object.Rock:
			g.rocks = append(g.rocks, o)
		case *object.Bullet:
			if !o.Spent() {
				g.bullets = append(g.bullets, o)
			}
		}
	}

	g.grid.Clear()
	for i, r := range g.rocks {
		g.grid.Insert(r.Position, i)
	}
}

// hitRock returns the first live rock near body that collides with it.
func (g *Game) hitRock(body *object.Sprite) *object.Rock {
	var hit *object.Rock
	g.grid.QueryAround(body.Position, func(i int) bool {
		r := g.rocks[i]
		if g.world.Killed(r) || !r.CollidesWith(body) {
			return false
		}
		hit = r
		return true
	})
	return hit
}

// handleCollisions applies one pass of the collision rules.
func (g *Game) handleCollisions() {
	g.collectCollidables()

	for _, b := range g.bullets {
		g.bulletCollisions(b)
	}

	if g.ship != nil && g.ship.Collidable() {
		if r := g.hitRock(g.ship.Sprite); r != nil {
			g.destroyRock(r, true)
			g.destroyShip()
		}
	}

	if g.saucer != nil && g.ship != nil && g.ship.Collidable() && g.ship.CollidesWith(g.saucer.Sprite) {
		g.destroySaucer(true)
		g.destroyShip()
	}

	if g.saucer != nil {
		if r := g.hitRock(g.saucer.Sprite); r != nil {
			g.destroyRock(r, false)
			g.destroySaucer(false)
		}
	}
}

// bulletCollisions resolves one bullet against rocks, the saucer and the
// ship. Only the ship's bullets score.
func (g *Game) bulletCollisions(b *object.Bullet) {
	scored := b.OwnerKind() == object.KindShip

	if r := g.hitRock(b.Sprite); r != nil {
		g.expire(b)
		g.destroyRock(r, scored)
		return
	}

	switch b.OwnerKind() {
	case object.KindShip:
		if g.saucer != nil && g.saucer.CollidesWith(b.Sprite) {
			g.expire(b)
			g.destroySaucer(true)
		}
	case object.KindSaucer:
		if g.ship != nil && g.ship.Collidable() && g.ship.CollidesWith(b.Sprite) {
			g.expire(b)
			g.destroyShip()
		}
	}
}

func (g *Game) expire(b *object.Bullet) {
	b.Expire()
	g.world.Kill(b)
}

// destroyRock removes r, splitting it into smaller rocks.
func (g *Game) destroyRock(r *object.Rock, scored bool) {
	g.world.Kill(r)
	for _, child := range r.Split(&g.cycle, g.rng) {
		g.world.Spawn(child)
	}
	object.SpawnExplosion(r.Position, config.RockDebris, config.DebrisSpeed, config.DebrisTTL, g.rng, g.world)
	g.sound.PlaySound(rockExplosions[r.Size])
	g.emit(Event{Type: EventEntityDestroyed, Kind: object.KindRock})
	if scored {
		g.award(r.Score())
	}
}

func (g *Game) destroySaucer(scored bool) {
	s := g.saucer
	g.saucer = nil
	g.world.Kill(s)
	s.Silence()
	object.SpawnExplosion(s.Position, config.SaucerDebris, config.DebrisSpeed, config.DebrisTTL, g.rng, g.world)
	g.sound.PlaySound(audio.Explode2)
	g.emit(Event{Type: EventEntityDestroyed, Kind: object.KindSaucer})
	if scored {
		g.award(s.Score())
	}
	g.scheduleSaucer()
	g.log.Debug("saucer destroyed", "size", s.Size, "scored", scored)
}

// destroyShip removes the ship and takes a life. The game moves on to
// respawning or, with no lives left, game over.
func (g *Game) destroyShip() {
	s := g.ship
	g.ship = nil
	s.Destroy()
	g.world.Kill(s)
	object.SpawnExplosion(s.Position, config.ShipDebris, config.ShipDebrisSpeed, config.ShipDebrisTTL, g.rng, g.world)
	g.sound.PlaySound(audio.Explode1)

	if g.board.LoseLife() {
		g.state = GameStateRespawning
		g.respawnTimer = config.RespawnFrames
		g.emit(Event{Type: EventShipDestroyed, Kind: object.KindShip})
		g.log.Debug("ship destroyed", "lives", g.board.Lives())
		return
	}

	g.state = GameStateGameOver
	g.emit(Event{Type: EventShipDestroyed, Kind: object.KindShip})
	g.emit(Event{Type: EventGameOver})
	g.log.Debug("game over", "score", g.board.Score())
}

// award adds points and grants any extra lives they earn.
func (g *Game) award(points int) {
	extra := g.board.Add(points)
	g.emit(Event{Type: EventScoreAdd, Points: points})
	for i := 0; i < extra; i++ {
		g.sound.PlaySound(audio.ExtraLife)
		g.emit(Event{Type: EventExtraLife})
		g.log.Debug("extra life", "score", g.board.Score(), "lives", g.board.Lives())
	}
}
