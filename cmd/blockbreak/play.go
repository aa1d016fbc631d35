package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/games/breakout"
	"github.com/vovakirdan/blockbreak/internal/platform/pixel"
	"github.com/vovakirdan/blockbreak/internal/platform/tui"
	"github.com/vovakirdan/blockbreak/internal/registry"
)

var (
	flagConfig   string
	flagControls string
	flagBonus    string
	flagGUI      bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: breakout).

Controls:
  Left/Right, A/D  - Move the paddle
  Mouse            - Hold the button to steer (--controls pointer)
  P                - Pause
  Space/R          - Restart after a clear or a loss
  Esc              - Back (menu only)
  Q/Ctrl+C         - Quit

Bonus policies:
  balls  - One second off per surviving ball beyond the first
  combo  - Ball bonus plus 0.1s per combo level from 2 upward

Examples:
  blockbreak play
  blockbreak play breakout_classic
  blockbreak play --bonus balls --controls pointer
  blockbreak play --gui
  blockbreak play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	playCmd.Flags().StringVar(&flagControls, "controls", "", "Control mode: keyboard, pointer")
	playCmd.Flags().StringVar(&flagBonus, "bonus", "", "Bonus policy: balls, combo")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a pixel window instead of using the terminal")
}

// applyGameFlags validates the config file and overrides, then hands them
// to the variants. Errors here stop the program before any UI starts.
func applyGameFlags() error {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	overrides := config.Overrides{Policy: flagBonus, Controls: flagControls}
	config.ApplyOverrides(&cfg, overrides)
	if err := cfg.Validate(); err != nil {
		return err
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetOverrides(overrides)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'blockbreak list' to see available variants)", gameID)
	}

	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	cfg := runtimeConfig()

	if flagGUI {
		bg, ok := game.(*breakout.Game)
		if !ok {
			return fmt.Errorf("variant %q has no pixel frontend", gameID)
		}
		logger, closer, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}
		defer closer.Close()
		return pixel.Run(bg, cfg, logger)
	}

	// The terminal belongs to the game; logs only go to a file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	if _, err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
