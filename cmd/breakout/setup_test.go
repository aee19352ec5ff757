package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/loop"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}
	if !strings.Contains(out, "breakout") {
		t.Errorf("log output %q is missing the prefix", out)
	}

	if _, err := newLogger(&buf, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenLogOutput(t *testing.T) {
	w, closeLog, err := openLogOutput("", io.Discard)
	if err != nil || w != io.Discard {
		t.Fatalf("empty path should return fallback, got %v, %v", w, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "breakout.log")
	w, closeLog, err = openLogOutput(path, io.Discard)
	if err != nil {
		t.Fatalf("openLogOutput() error = %v", err)
	}
	if _, err := io.WriteString(w, "line\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "line\n" {
		t.Errorf("log file = %q, %v", data, err)
	}
}

func TestLoadConfigFPSOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := loadConfig("", 30)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if src != config.SourceEmbedded {
		t.Errorf("source = %s, expected embedded", src)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}

	if _, _, err := loadConfig("", 5000); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("expected ErrInvalid for tick rate 5000, got %v", err)
	}
}

func TestSimulate(t *testing.T) {
	script, err := loop.ParseScript([]byte(`
ticks: 10
events:
  - {tick: 0, type: down, key: left}
  - {tick: 4, type: up, key: left}
`))
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}

	report, err := simulate(context.Background(), config.Default(), script, false, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if report.Frames != 10 {
		t.Errorf("Frames = %d, expected 10", report.Frames)
	}
	if report.PaddleX != 340-4*5 {
		t.Errorf("PaddleX = %d, expected %d", report.PaddleX, 340-4*5)
	}
	if !report.Quit || report.BricksRemaining != 100 {
		t.Errorf("unexpected report %+v", report)
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, report); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}
	for _, want := range []string{"frames: 10", "paddle_x: 320", "hash: ", "status: playing"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report missing %q:\n%s", want, buf.String())
		}
	}
}
