package loop

import (
	"fmt"
)

// Title art (figlet "small" font)
var titleArt = []string{
	` ___  ___  _ __   __ ___  ___  ___ ___  ___ `,
	`| _ \/ _ \| |\ \ / /| _ \/ _ \|_ _|   \/ __|`,
	`|  _/ (_) | |_\ V / |   / (_) || || |) \__ \`,
	`|_|  \___/|____|_|  |_|_\\___/|___|___/|___/`,
}

const controlsText = "Arrows or A/D rotate, W thrust, SPACE fire, S hyperspace, Q quit"

// drawUI draws the text overlay for the current game state.
func (s *session) drawUI() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch s.game.State() {
	case GameStateStart:
		s.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		s.drawPlayingHUD(termWidth, termHeight)
	case GameStateRespawning:
		s.drawPlayingHUD(termWidth, termHeight)
		s.chunkWriter.WriteCentered(centerX, centerY-2, "GET READY")
	case GameStateGameOver:
		s.drawPlayingHUD(termWidth, termHeight)
		s.drawGameOverScreen(centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func (s *session) drawStartScreen(centerX, centerY int) {
	cw := s.chunkWriter

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}
	titleStartY := centerY - len(titleArt) - 1
	for i, line := range titleArt {
		cw.WriteAt(max(centerX-titleWidth/2, 1), titleStartY+i, line)
	}

	cw.WriteCentered(centerX, centerY+1, "Press SPACE to Start")
	cw.WriteCentered(centerX, centerY+3, controlsText)
}

// drawPlayingHUD draws the in-game HUD (score, lives, wave).
func (s *session) drawPlayingHUD(termWidth, termHeight int) {
	cw := s.chunkWriter

	cw.WriteAt(2, 1, fmt.Sprintf("Score: %-8d", s.game.Score()))

	livesText := fmt.Sprintf("Lives: %2d", s.game.Lives())
	cw.WriteAt(max(termWidth-len(livesText), 1), 1, livesText)

	cw.WriteAt(2, termHeight, fmt.Sprintf("Wave: %-3d", s.game.Wave()))
}

// drawGameOverScreen draws the game over screen.
func (s *session) drawGameOverScreen(centerX, centerY int) {
	cw := s.chunkWriter
	cw.WriteCentered(centerX, centerY-2, "GAME OVER")
	cw.WriteCentered(centerX, centerY, fmt.Sprintf("Score: %d", s.game.Score()))
	cw.WriteCentered(centerX, centerY+2, "Press SPACE to Restart")
}
