package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}
	if want := filepath.Join(logDir, "imaan.log"); Path() != want {
		t.Errorf("Path() = %q, want %q", Path(), want)
	}

	Warn("disk almost full", "free", 12)
	data, err := os.ReadFile(Path())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "disk almost full") {
		t.Errorf("log file missing warning, got %q", string(data))
	}
}

func TestInitDebugMode(t *testing.T) {
	var stderr bytes.Buffer
	if err := Init(Config{Debug: true, ConfigDir: t.TempDir(), Stderr: &stderr}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	Debug("record reloaded", "changed", true)
	if !strings.Contains(stderr.String(), "record reloaded") {
		t.Errorf("debug output not mirrored to stderr, got %q", stderr.String())
	}
}

func TestInitLevel(t *testing.T) {
	if err := Init(Config{Level: "error", ConfigDir: t.TempDir()}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	Warn("should be filtered")
	data, _ := os.ReadFile(Path())
	if strings.Contains(string(data), "should be filtered") {
		t.Error("warn entry written at error level")
	}

	if err := Init(Config{Level: "loud", ConfigDir: t.TempDir()}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestHelpersNilSafe(t *testing.T) {
	Logger = nil
	Debug("a")
	Info("b")
	Warn("c")
	Error("d")
}
