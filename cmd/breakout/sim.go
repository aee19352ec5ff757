package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/loop"
)

var flagRealtime bool

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Replay a scripted input file without a display",
	Long: `Run the game headless, feeding it the input events from a YAML script,
and print the final state.

Script format:
  ticks: 600
  events:
    - {tick: 0, type: down, key: right}
    - {tick: 45, type: up, key: right}
    - {tick: 300, type: down, key: space}

Event types are down, up and quit. Keys are left, right, a, d and space.

Examples:
  breakout sim ./scripts/serve.yaml
  breakout sim ./scripts/serve.yaml --realtime`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the tick rate instead of running flat out")
}

// simReport is the summary printed after a headless run.
type simReport struct {
	Frames            int    `yaml:"frames"`
	Hash              string `yaml:"hash"`
	breakout.Snapshot `yaml:",inline"`
}

func runSim(_ *cobra.Command, args []string) {
	logger, closeLog := mustLogger(os.Stderr)
	defer closeLog()

	cfg := mustConfig(logger)

	script, err := loop.LoadScript(args[0])
	if err != nil {
		fatal(logger, closeLog, "Couldn't load script", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := simulate(ctx, cfg, script, flagRealtime, logger)
	if err != nil {
		fatal(logger, closeLog, "Couldn't finish simulation", err)
	}

	if err := writeReport(os.Stdout, report); err != nil {
		fatal(logger, closeLog, "Couldn't write report", err)
	}
}

// simulate runs script against a fresh game and reports the final state.
func simulate(ctx context.Context, cfg config.Config, script *loop.Script, realtime bool, logger *log.Logger) (simReport, error) {
	g := breakout.New(cfg)

	runner := loop.NewRunner(cfg.TickRate, logger)
	runner.Paced = realtime

	frames, err := runner.Run(ctx, loop.NewScriptSource(script), g, nil)
	if err != nil {
		return simReport{}, err
	}

	snap := g.Snapshot()
	logger.Info("simulation done", "frames", frames, "status", snap.Status, "outcome", snap.Outcome)

	return simReport{
		Frames:   frames,
		Hash:     fmt.Sprintf("%016x", snap.Hash()),
		Snapshot: snap,
	}, nil
}

func writeReport(w io.Writer, r simReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
