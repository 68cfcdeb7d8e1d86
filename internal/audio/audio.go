// Package audio plays the game's sound effects.
//
// The core only sees the Player interface; SoundManager drives a real
// device through beep and Nop is used where no sound is wanted (SSH
// sessions, tests).
package audio

// Sound names understood by every Player.
const (
	Fire        = "fire"
	Thrust      = "thrust"
	Explode1    = "explode1"
	Explode2    = "explode2"
	Explode3    = "explode3"
	LargeSaucer = "lsaucer"
	SmallSaucer = "ssaucer"
	SaucerFire  = "sfire"
	ExtraLife   = "extralife"
)

// Player receives sound events from the game.
type Player interface {
	// PlaySound plays a one-shot effect.
	PlaySound(name string)
	// PlaySoundContinuous loops an effect until StopSound. Calling it while
	// the sound is already looping has no effect.
	PlaySoundContinuous(name string)
	// StopSound stops a looping effect. Unknown or idle names are ignored.
	StopSound(name string)
}

// Nop is a Player that discards every event.
type Nop struct{}

func (Nop) PlaySound(string)           {}
func (Nop) PlaySoundContinuous(string) {}
func (Nop) StopSound(string)           {}

// OrNop returns p, or Nop when p is nil.
func OrNop(p Player) Player {
	if p == nil {
		return Nop{}
	}
	return p
}
