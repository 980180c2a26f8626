package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the local terminal",
	Long: `Start a game on the local terminal.

Controls:
  Arrows/WASD  - Move
  Space/F      - Fire
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - More keys
  Q/Ctrl+C     - Quit

Difficulty options (fixed for the whole game):
  easy   - Fewer, slower enemies
  normal - Default spawn rate and fall speed
  hard   - More, faster enemies

Examples:
  spaceshooter play
  spaceshooter play --difficulty easy
  spaceshooter play --seed 42 --log-file shooter.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	shooterCfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal is in alt-screen mode; only log when asked to.
	opts := tui.Options{
		InitialHoldTicks: shooterCfg.Controls.InitialHoldTicks,
		HoldTicks:        shooterCfg.Controls.HoldTicks,
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()

		logger, err := newLogger(f, "spaceshooter")
		if err != nil {
			return err
		}
		opts.Logger = logger
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(gameFactory(shooterCfg)(), cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
