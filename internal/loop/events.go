package loop

import "github.com/tomz197/polyroids/internal/object"

// EventType identifies what happened during a Step.
type EventType int

const (
	EventScoreAdd EventType = iota
	EventEntityDestroyed
	EventExtraLife
	EventShipDestroyed
	EventWaveStart
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventScoreAdd:
		return "score_add"
	case EventEntityDestroyed:
		return "entity_destroyed"
	case EventExtraLife:
		return "extra_life"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventWaveStart:
		return "wave_start"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step for front ends and tests.
type Event struct {
	Type   EventType
	Kind   object.Kind // Destroyed entity (EventEntityDestroyed)
	Points int         // Points awarded (EventScoreAdd)
	Score  int         // Running score after the event
	Lives  int         // Lives after the event
	Wave   int         // Wave number (EventWaveStart)
}
