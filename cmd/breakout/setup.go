package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/config"
)

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           lvl,
	}), nil
}

// openLogOutput returns the --log-file writer, or fallback when no file is set.
func openLogOutput(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return fallback, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-supplied log path
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// loadConfig loads the configuration and applies command line overrides.
func loadConfig(path string, fps int) (config.Config, config.Source, error) {
	cfg, src, err := config.Load(path)
	if err != nil {
		return config.Config{}, src, err
	}
	if fps > 0 {
		cfg.TickRate = fps
		if err := cfg.Validate(); err != nil {
			return config.Config{}, src, err
		}
	}
	return cfg, src, nil
}

// mustLogger builds the logger from the global flags or exits.
func mustLogger(fallback io.Writer) (*log.Logger, func()) {
	out, closeLog, err := openLogOutput(flagLogFile, fallback)
	if err != nil {
		fmt.Fprintf(os.Stdout, "[error] Couldn't open log file: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stdout, "[error] Couldn't create logger: %v\n", err)
		os.Exit(1)
	}
	return logger, closeLog
}

// mustConfig loads the configuration from the global flags or exits.
func mustConfig(logger *log.Logger) config.Config {
	cfg, src, err := loadConfig(flagConfig, flagFPS)
	if err != nil {
		fatal(logger, func() {}, "Couldn't load config", err)
	}
	logger.Debug("config loaded", "source", src, "tick_rate", cfg.TickRate)
	return cfg
}

func fatal(logger *log.Logger, closeLog func(), msg string, err error) {
	logger.Error(msg, "err", err)
	closeLog()
	os.Exit(1)
}
