package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play Breakout in the terminal. The 800x600 playfield is scaled to the
terminal size.

Terminals do not report key releases, so the paddle stops once a movement
key has not repeated for terminal.key_hold (250ms by default).

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Space      - Restart
  Q/Esc      - Quit

Logs are discarded while the game is on screen unless --log-file is set.`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func runTUI(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	cfg := mustConfig(logger)

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.Run(breakout.New(cfg), cfg, width, height, logger); err != nil {
		fatal(logger, closeLog, "Couldn't run terminal program", err)
	}
}
