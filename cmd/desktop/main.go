package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/polyroids/internal/audio"
	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/desktop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "polyroids",
	})

	if err := config.Load(); err != nil {
		logger.Warn("config", "err", err)
	}
	settings, err := config.FromEnv()
	if err != nil {
		logger.Warn("config", "err", err)
	}
	if lvl, err := log.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	var sound audio.Player = audio.Nop{}
	if settings.Sound {
		sm := audio.NewSoundManager(logger)
		if err := sm.Initialize(); err == nil {
			defer sm.Cleanup()
			sound = sm
		}
	}

	g := desktop.New(desktop.Options{
		Width:  settings.WorldWidth,
		Height: settings.WorldHeight,
		Lives:  settings.Lives,
		Seed:   settings.Seed,
		Sound:  sound,
	}, logger)

	ebiten.SetWindowSize(settings.WorldWidth, settings.WorldHeight)
	ebiten.SetWindowTitle("Polyroids")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
