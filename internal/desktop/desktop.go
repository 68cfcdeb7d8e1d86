// Package desktop runs the game in an ebiten window.
package desktop

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/polyroids/internal/audio"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/loop"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

const lineWidth = 1.5

// Options configures a desktop Game.
type Options struct {
	Width  int
	Height int
	Lives  int
	Seed   int64 // 0 seeds from the clock
	Sound  audio.Player
}

// Game adapts a loop.Game to ebiten.Game.
type Game struct {
	game   *loop.Game
	width  int
	height int
	log    *log.Logger
	canvas canvas
}

// New creates a window game showing the title screen.
func New(opts Options, logger *log.Logger) *Game {
	if opts.Width <= 0 {
		opts.Width = 1024
	}
	if opts.Height <= 0 {
		opts.Height = 768
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		game: loop.NewGame(object.NewScreen(opts.Width, opts.Height), loop.GameOptions{
			Lives:  opts.Lives,
			Rand:   rand.New(rand.NewSource(seed)),
			Sound:  opts.Sound,
			Logger: logger,
		}),
		width:  opts.Width,
		height: opts.Height,
		log:    logger,
	}
}

// Update advances the game one frame. ebiten calls it at 60 ticks per
// second, the rate every speed in the game is tuned for.
func (g *Game) Update() error {
	in := readKeys()
	if in.Quit {
		return ebiten.Termination
	}

	before := g.game.State()
	g.game.Step(in)
	if after := g.game.State(); after != before {
		g.log.Debug("state change", "from", before, "to", after)
	}
	return nil
}

// Draw strokes every outline and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.canvas.dst = screen
	g.game.Draw(&g.canvas)
	g.drawHUD(screen)
}

// Layout keeps the logical screen at world size; ebiten scales it to the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.game.Score()), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", g.game.Lives()), g.width-80, 10)

	cx, cy := g.width/2, g.height/2
	switch g.game.State() {
	case loop.GameStateStart:
		ebitenutil.DebugPrintAt(screen, "POLYROIDS", cx-27, cy-40)
		ebitenutil.DebugPrintAt(screen, "Press SPACE to Start", cx-60, cy)
		ebitenutil.DebugPrintAt(screen, "Arrows rotate/thrust, SPACE fire, DOWN hyperspace, Q quit", cx-171, cy+20)
	case loop.GameStatePlaying:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Wave: %d", g.game.Wave()), 10, g.height-20)
	case loop.GameStateRespawning:
		ebitenutil.DebugPrintAt(screen, "GET READY", cx-27, cy-40)
	case loop.GameStateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-27, cy-40)
		ebitenutil.DebugPrintAt(screen, "Press SPACE to Restart", cx-66, cy)
	}
}

// readKeys maps the keyboard to one frame of input. Fire and start only
// report the press itself, so the key that starts a game does not also
// fire a shot.
func readKeys() input.Input {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return input.Input{
		Quit:   held(ebiten.KeyQ),
		Left:   held(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:  held(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:     held(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:   held(ebiten.KeyArrowDown, ebiten.KeyS),
		Space:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Enter:  inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Escape: held(ebiten.KeyEscape),
	}
}

// canvas strokes outlines onto an ebiten image.
// Implements object.Renderer.
type canvas struct {
	dst *ebiten.Image
}

func (c *canvas) DrawPolygon(points []physics.Vector2D, col object.Color) {
	n := len(points)
	for i := 0; i < n; i++ {
		p1, p2 := points[i], points[(i+1)%n]
		vector.StrokeLine(c.dst, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), lineWidth, col, true)
	}
}

var _ object.Renderer = (*canvas)(nil)
