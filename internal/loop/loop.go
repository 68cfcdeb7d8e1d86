// Package loop runs game sessions: the world of entities, the per-frame
// game rules and the terminal front end that drives them.
package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/polyroids/internal/audio"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/loop/config"
	"github.com/tomz197/polyroids/internal/object"
)

// Options configures a terminal session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Terminal size source (default os.Stdout)
	Width        int               // World width (default 1024)
	Height       int               // World height (default 768)
	Lives        int
	Seed         int64 // 0 seeds from the clock
	Sound        audio.Player
	Logger       *log.Logger
}

// session holds the terminal side of one running game.
type session struct {
	game         *Game
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	stream       *input.Stream
	termSizeFunc draw.TermSizeFunc
	writer       io.Writer
	log          *log.Logger
}

// Run plays a game on a terminal until the player quits, the reader is
// exhausted or ctx is cancelled. The reader should deliver raw key bytes.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	s := newSession(ctx, r, w, opts)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	ticker := time.NewTicker(config.TargetFrameTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return nil
		default:
		}

		in := input.ReadInput(s.stream)
		if in.Quit || s.stream.Closed() {
			break
		}

		s.updateScreen()
		s.step(in)

		if err := s.drawFrame(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return nil
		case <-ticker.C:
		}
	}

	draw.ClearScreen(w)
	s.log.Debug("session ended", "score", s.game.Score(), "wave", s.game.Wave())
	return nil
}

func newSession(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) *session {
	if opts.Width <= 0 {
		opts.Width = 1024
	}
	if opts.Height <= 0 {
		opts.Height = 768
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen := object.NewScreen(opts.Width, opts.Height)
	game := NewGame(screen, GameOptions{
		Lives:  opts.Lives,
		Rand:   rand.New(rand.NewSource(seed)),
		Sound:  opts.Sound,
		Logger: opts.Logger,
	})

	s := &session{
		game:         game,
		canvas:       draw.NewCanvas(1, 1, float64(opts.Width), float64(opts.Height)),
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
		stream:       input.StartStream(ctx, r),
		termSizeFunc: opts.TermSizeFunc,
		writer:       w,
		log:          opts.Logger,
	}
	s.updateScreen()
	return s
}

// updateScreen handles terminal resize. Terminals beyond the max render
// size get a centered canvas with a border.
func (s *session) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSize(s.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.canvas.Resize(renderWidth, renderHeight)
		s.canvas.SetOffset(offsetCol, offsetRow)
		s.chunkWriter.SetOffset(offsetCol, offsetRow)
		s.redraw()
	}
}

// step advances the game one frame. A state change repaints the whole
// terminal so stale overlay text disappears.
func (s *session) step(in input.Input) {
	before := s.game.State()
	s.game.Step(in)
	after := s.game.State()
	if before == after {
		return
	}

	s.log.Debug("state change", "from", before, "to", after)
	if after == GameStatePlaying && (before == GameStateStart || before == GameStateGameOver) {
		// The key that started the game must not also fire.
		s.stream.Reset()
	}
	s.redraw()
}

func (s *session) redraw() {
	draw.ClearScreen(s.chunkWriter)
	s.canvas.ForceRedraw()
}

// drawFrame renders the changed cells, the border and the text overlay.
func (s *session) drawFrame() error {
	s.canvas.Clear()
	s.game.Draw(s.canvas)
	s.canvas.Render(s.chunkWriter)
	s.canvas.RenderBorder(s.chunkWriter)
	s.drawUI()
	return s.chunkWriter.Flush()
}
