package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/polyroids/internal/audio"
	"github.com/tomz197/polyroids/internal/physics"
)

// SaucerSize represents the size tier of a saucer.
type SaucerSize int

const (
	SaucerLarge SaucerSize = iota
	SaucerSmall
)

func (s SaucerSize) String() string {
	if s == SaucerSmall {
		return "small"
	}
	return "large"
}

// Per-tier properties, indexed by SaucerSize.
var (
	saucerSpeeds     = [...]float64{1.5, 2.5}
	saucerScales     = [...]float64{1.5, 1.0}
	saucerScores     = [...]int{500, 1000}
	saucerBulletTTLs = [...]int{60, 90}
	saucerSounds     = [...]string{audio.LargeSaucer, audio.SmallSaucer}
)

const (
	SaucerMaxBullets     = 1
	SaucerBulletVelocity = 5.0
	SaucerTurnFrames     = 90 // frames between changes of vertical direction
	SaucerLaps           = 2  // horizontal wraps before the saucer leaves
	LargeSaucerSpread    = 15 // degrees of aim error either side of the target
)

var saucerOutline = []physics.Vector2D{
	{X: -9, Y: 0}, {X: -3, Y: -3}, {X: -2, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -3},
	{X: 9, Y: 0}, {X: -9, Y: 0}, {X: -3, Y: 4}, {X: 3, Y: 4}, {X: 9, Y: 0},
}

// Saucer is an enemy that crosses the screen shooting at the ship.
type Saucer struct {
	*Sprite
	Size SaucerSize
	Gun  *Gun

	speed  float64
	frames int
	laps   int
	sound  audio.Player
}

// NewSaucer creates a saucer on the left or right edge at a random height,
// flying horizontally into the world. Its engine sound starts immediately.
func NewSaucer(screen Screen, size SaucerSize, rng *rand.Rand, sound audio.Player) *Saucer {
	speed := saucerSpeeds[size]
	pos := physics.NewVector2D(0, rng.Float64()*float64(screen.Height))
	heading := physics.NewVector2D(speed, 0)
	if rng.Intn(2) == 1 {
		pos.X = float64(screen.Width)
		heading.X = -speed
	}

	s := &Saucer{
		Sprite: MustSprite(pos, heading, ScaleOutline(saucerOutline, saucerScales[size]), White),
		Size:   size,
		Gun:    NewGun(KindSaucer, SaucerMaxBullets),
		speed:  speed,
		sound:  audio.OrNop(sound),
	}

	s.sound.StopSound(audio.LargeSaucer)
	s.sound.StopSound(audio.SmallSaucer)
	s.sound.PlaySoundContinuous(saucerSounds[size])
	return s
}

func (s *Saucer) Kind() Kind {
	return KindSaucer
}

// Score returns the points for destroying the saucer.
func (s *Saucer) Score() int {
	return saucerScores[s.Size]
}

// Laps returns how many times the saucer has wrapped horizontally.
func (s *Saucer) Laps() int {
	return s.laps
}

// Silence stops the saucer's engine sound.
func (s *Saucer) Silence() {
	s.sound.StopSound(saucerSounds[s.Size])
}

// Think fires at the target if it can be hit. The small saucer aims
// exactly; the large one is off by up to LargeSaucerSpread degrees.
func (s *Saucer) Think(target Target, spawner Spawner, rng *rand.Rand) {
	if target == nil || !target.Collidable() {
		return
	}
	d := target.Center().Sub(s.Position)
	if d.Magnitude() == 0 {
		return
	}

	angle := math.Atan2(d.Y, d.X)
	if s.Size == SaucerLarge {
		angle += radians((rng.Float64()*2 - 1) * LargeSaucerSpread)
	}
	heading := physics.NewVector2D(math.Cos(angle), math.Sin(angle)).Scale(SaucerBulletVelocity)

	if s.Gun.Fire(s.Position, heading, saucerBulletTTLs[s.Size], spawner) != nil {
		s.sound.PlaySound(audio.SaucerFire)
	}
}

// Update zig-zags the saucer and moves it. The saucer leaves after
// SaucerLaps horizontal wraps.
func (s *Saucer) Update(ctx UpdateContext) bool {
	s.frames++
	if s.frames%SaucerTurnFrames == 0 && ctx.Rand != nil {
		s.Heading.Y = float64(ctx.Rand.Intn(3)-1) * s.speed
	}

	prevX := s.Position.X
	s.Move(ctx.Screen)
	if (s.Heading.X > 0 && s.Position.X < prevX) || (s.Heading.X < 0 && s.Position.X > prevX) {
		s.laps++
	}

	if s.laps >= SaucerLaps {
		s.Silence()
		return true
	}
	return false
}
