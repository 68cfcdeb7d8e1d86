package object

import (
	"math/rand"

	"github.com/tomz197/polyroids/internal/audio"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/physics"
)

// Ship handling, in world units and frames.
const (
	ShipAcceleration     = 0.2
	ShipDeceleration     = 0.005 // fraction of velocity lost per frame without thrust
	ShipMaxVelocity      = 10.0
	ShipTurnAngle        = 6.0 // degrees per frame
	ShipBulletVelocity   = 13.0
	ShipBulletTTL        = 35
	ShipMaxBullets       = 4
	ShipHyperspaceFrames = 100
)

var (
	shipOutline = []physics.Vector2D{{X: 0, Y: -10}, {X: 6, Y: 10}, {X: 3, Y: 7}, {X: -3, Y: 7}, {X: -6, Y: 10}}
	jetOutline  = []physics.Vector2D{{X: -3, Y: 7}, {X: 0, Y: 13}, {X: 3, Y: 7}}
)

// ShipState is the ship's life-cycle phase.
type ShipState int

const (
	ShipFlying ShipState = iota
	ShipHyperspace
	ShipDestroyed
)

// Ship is the player-controlled spaceship.
type Ship struct {
	*Sprite
	Gun *Gun

	state            ShipState
	hyperspaceFrames int
	thrusting        bool // thrust applied since the last update
	jetVisible       bool
	fireHeld         bool
	jet              *Sprite
	screen           Screen
	sound            audio.Player
}

// NewShip creates a ship at rest in the centre of the world, pointing up.
func NewShip(screen Screen, sound audio.Player) *Ship {
	center := screen.Center()
	return &Ship{
		Sprite: MustSprite(center, physics.Vector2D{}, shipOutline, White),
		Gun:    NewGun(KindShip, ShipMaxBullets),
		jet:    MustSprite(center, physics.Vector2D{}, jetOutline, White),
		screen: screen,
		sound:  audio.OrNop(sound),
	}
}

func (s *Ship) Kind() Kind {
	return KindShip
}

// State returns the ship's life-cycle phase.
func (s *Ship) State() ShipState {
	return s.state
}

// InHyperspace reports whether the ship is currently jumping.
func (s *Ship) InHyperspace() bool {
	return s.state == ShipHyperspace
}

// Collidable reports whether anything can hit the ship. Ships in
// hyperspace or already destroyed are ignored by every collision test.
func (s *Ship) Collidable() bool {
	return s.state == ShipFlying
}

// Control applies one frame of player intents.
// Fire triggers on the press, not while the key is held.
func (s *Ship) Control(in input.Intents, spawner Spawner, rng *rand.Rand) {
	if s.state == ShipDestroyed {
		return
	}
	if in.RotateLeft {
		s.RotateLeft()
	}
	if in.RotateRight {
		s.RotateRight()
	}
	if in.Thrust {
		s.IncreaseThrust()
	}
	if in.Fire && !s.fireHeld {
		s.FireBullet(spawner)
	}
	s.fireHeld = in.Fire
	if in.Hyperspace {
		s.EnterHyperspace(rng)
	}
}

func (s *Ship) RotateLeft() {
	s.Angle += ShipTurnAngle
}

func (s *Ship) RotateRight() {
	s.Angle -= ShipTurnAngle
}

// IncreaseThrust accelerates along the ship's facing, capped at
// ShipMaxVelocity.
func (s *Ship) IncreaseThrust() {
	s.sound.PlaySoundContinuous(audio.Thrust)
	s.thrusting = true

	s.Heading = s.Heading.Add(facing(s.Angle, ShipAcceleration))
	if speed := s.Heading.Magnitude(); speed > ShipMaxVelocity {
		s.Heading = s.Heading.Scale(ShipMaxVelocity / speed)
	}
}

// DecreaseThrust bleeds off a fraction of the ship's velocity.
func (s *Ship) DecreaseThrust() {
	s.sound.StopSound(audio.Thrust)
	if s.Heading.X == 0 && s.Heading.Y == 0 {
		return
	}
	s.Heading = s.Heading.Scale(1 - ShipDeceleration)
}

// FireBullet shoots along the ship's facing. Nothing happens in hyperspace,
// after destruction, or when ShipMaxBullets are already in flight.
func (s *Ship) FireBullet(spawner Spawner) {
	if s.state != ShipFlying {
		return
	}
	heading := facing(s.Angle, ShipBulletVelocity)
	if s.Gun.Fire(s.Position, heading, ShipBulletTTL, spawner) != nil {
		s.sound.PlaySound(audio.Fire)
	}
}

// EnterHyperspace hides the ship and moves it to a random position. It
// reappears there after ShipHyperspaceFrames.
func (s *Ship) EnterHyperspace(rng *rand.Rand) {
	if s.state != ShipFlying {
		return
	}
	s.state = ShipHyperspace
	s.hyperspaceFrames = ShipHyperspaceFrames
	s.Color = Black
	s.Position = s.screen.RandomPosition(rng)
	s.TransformedOutline()
}

// Destroy marks the ship as hit.
func (s *Ship) Destroy() {
	s.state = ShipDestroyed
	s.sound.StopSound(audio.Thrust)
}

// Update decays velocity when no thrust was applied, counts down
// hyperspace and moves the ship.
func (s *Ship) Update(ctx UpdateContext) bool {
	if s.state == ShipDestroyed {
		return true
	}

	if !s.thrusting {
		s.DecreaseThrust()
	}
	s.jetVisible = s.thrusting
	s.thrusting = false

	if s.state == ShipHyperspace {
		s.hyperspaceFrames--
		if s.hyperspaceFrames <= 0 {
			s.state = ShipFlying
			s.Color = White
		}
	}

	s.Move(ctx.Screen)
	s.jet.Position = s.Position
	s.jet.Angle = s.Angle
	return false
}

// Draw renders the hull and, while thrusting, the exhaust flame.
func (s *Ship) Draw(r Renderer) {
	s.Sprite.Draw(r)
	if s.jetVisible && s.Visible() {
		s.jet.Draw(r)
	}
}
