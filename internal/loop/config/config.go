// Package config centralizes all tunable game parameters.
package config

import "time"

// Frame rate. Every speed and timer in the game is per frame.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Max render resolution in terminal cells; larger terminals get a border.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Waves
const (
	InitialRocks = 4
	MaxRocks     = 11
)

// Player
const (
	RespawnFrames = 120 // Minimum frames between losing a ship and respawning
	SafeRadius    = 150 // No rock may be this close to the centre for a respawn
)

// Saucers
const (
	SaucerIntervalFrames = 900   // Base frames between saucers
	SaucerJitterFrames   = 600   // Random extra frames added to each interval
	SmallSaucerScore     = 40000 // From this score on only small saucers appear
	SmallSaucerChance    = 4     // Otherwise one in this many saucers is small
)

// Debris
const (
	DebrisSpeed     = 1.5
	DebrisTTL       = 30
	RockDebris      = 10
	SaucerDebris    = 16
	ShipDebris      = 24
	ShipDebrisSpeed = 2.0
	ShipDebrisTTL   = 60
)

// Collision broad phase. Must be at least the largest centre-to-centre
// distance at which two collidable sprites can touch (about 54, a large
// rock against a large saucer).
const GridCellSize = 64.0
