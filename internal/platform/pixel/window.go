// Package pixel is the native window frontend. It draws the play field at
// its own pixel resolution, scaled up, with the full effects layer.
package pixel

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/games/breakout"
)

// Scale is the number of screen pixels per field pixel.
const Scale = 2

// Window adapts a breakout game to ebiten.Game.
type Window struct {
	game   *breakout.Game
	logger *log.Logger
	input  core.InputFrame
	touch  touchState
}

// NewWindow wraps an already reset game. A nil logger discards output.
func NewWindow(game *breakout.Game, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:   game,
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// Update polls input and advances the simulation by one tick.
func (w *Window) Update() error {
	if w.pollInput() {
		return ebiten.Termination
	}

	result := w.game.Step(w.input)
	for _, e := range result.Events {
		fields := append([]any{"variant", w.game.ID()}, e.Fields...)
		switch e.Name {
		case "board cleared", "game over":
			w.logger.Info(e.Name, fields...)
		default:
			w.logger.Debug(e.Name, fields...)
		}
	}
	w.input.Clear()
	return nil
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	drawGame(screen, w.game)
}

// Layout fixes the logical resolution to the scaled field.
func (w *Window) Layout(_, _ int) (int, int) {
	cfg := w.game.Session().Config().Field
	return cfg.Width * Scale, cfg.Height * Scale
}

// seeded replaces a zero seed with one taken from now.
func seeded(cfg core.RuntimeConfig, now func() time.Time) core.RuntimeConfig {
	if cfg.Seed == 0 {
		cfg.Seed = now().UnixNano()
	}
	return cfg
}

// Run opens a window for game and blocks until it is closed.
func Run(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	cfg = seeded(cfg, time.Now)
	game.Reset(cfg)
	w := NewWindow(game, logger)

	field := game.Session().Config().Field
	ebiten.SetWindowSize(field.Width*Scale*2, field.Height*Scale*2)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	w.logger.Debug("window opened", "variant", game.ID(), "seed", cfg.Seed)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("pixel: %w", err)
	}
	return nil
}
