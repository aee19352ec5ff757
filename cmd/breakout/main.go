// breakout is a single-level brick breaker for the desktop and the terminal.
//
// Usage:
//
//	breakout                 - Play in a window
//	breakout tui             - Play in the terminal
//	breakout sim <script>    - Replay a scripted input file without a display
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Override the tick rate from the config
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of standard output
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := execute(os.Stderr, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command with args, printing any error to stderr.
func execute(stderr io.Writer, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return err
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, clear the bricks",
	Long: `Breakout opens an 800x600 window with a paddle, a ball and a 10x10 wall
of bricks. Keep the ball off the bottom edge and send it out through the top.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Space      - Restart
  Close      - Quit

Examples:
  breakout
  breakout --fps 30
  breakout --config ./my-breakout.yaml --log-level debug
  breakout tui
  breakout sim ./scripts/serve.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(simCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(os.Stdout)
	defer closeLog()

	cfg := mustConfig(logger)

	face, err := window.LoadFont(cfg.Font.Path, cfg.Font.Size)
	if err != nil {
		fatal(logger, closeLog, "Couldn't load font", err)
	}

	if err := window.Run(breakout.New(cfg), face, logger); err != nil {
		fatal(logger, closeLog, "Couldn't run window", err)
	}
}
