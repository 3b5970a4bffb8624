package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesComponent(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "paycal.log")
	closer, err := Setup(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	For(ComponentLedger).Info("saved", "days", 3)
	For(ComponentLedger).Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "component=ledger") || !strings.Contains(out, "days=3") {
		t.Fatalf("log output missing attributes: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
}

func TestSetupEmptyPathDiscards(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	closer, err := Setup("", slog.LevelDebug)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()
	For(ComponentApp).Info("nowhere")
}

func TestLevel(t *testing.T) {
	if Level(true) != slog.LevelDebug || Level(false) != slog.LevelInfo {
		t.Fatal("unexpected level mapping")
	}
}
