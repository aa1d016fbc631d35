package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/platform/tui"
	"github.com/vovakirdan/blockbreak/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a clear or a loss press Esc to return to the menu.

Examples:
  blockbreak menu
  blockbreak menu --fps 60
  blockbreak menu --config ./my-breakout.yaml`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	menuCmd.Flags().StringVar(&flagControls, "controls", "", "Control mode: keyboard, pointer")
	menuCmd.Flags().StringVar(&flagBonus, "bonus", "", "Bonus policy: balls, combo")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := runtimeConfig()
	for {
		choice, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = choice.Config
		if choice.Quit {
			return nil
		}

		game, err := registry.Create(choice.GameID)
		if err != nil {
			logger.Error("cannot create game", "variant", choice.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		result, err := tui.Run(game, cfg, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		cfg = result.Config
		if !result.BackToMenu {
			return nil
		}
	}
}
