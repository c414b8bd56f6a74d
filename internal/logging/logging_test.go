package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Nilesh-194/snake-game-mobile/internal/config"
)

func TestSetupConsole(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := Setup(config.LogConfig{Level: "info"}, &buf)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()

	log.Debug().Msg("hidden")
	log.Info().Str("level", "easy").Msg("session started")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %q", out)
	}
	if !strings.Contains(out, "session started") || !strings.Contains(out, "easy") {
		t.Errorf("missing info message: %q", out)
	}
}

func TestSetupNilConsoleDiscards(t *testing.T) {
	log, closer, err := Setup(config.LogConfig{Level: "debug"}, nil)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()

	// Must not panic.
	log.Info().Msg("nowhere")
}

func TestSetupInvalidLevel(t *testing.T) {
	if _, _, err := Setup(config.LogConfig{Level: "loud"}, nil); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	log, closer, err := Setup(config.LogConfig{Level: "debug", File: path}, nil)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.Debug().Msg("tick")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !bytes.Contains(data, []byte(`"message":"tick"`)) {
		t.Errorf("log file content = %q", data)
	}
}

func TestSetupRotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.log")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}

	_, closer, err := Setup(config.LogConfig{Level: "info", File: path, MaxSize: 1024}, nil)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != "snake.log" && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected a rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > 1024 {
		t.Errorf("new log file size %d, want <= 1024", info.Size())
	}
}

func TestRotateKeepsSmallFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	if err := os.WriteFile(path, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := rotate(path, 1024, time.Now()); err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("small file should stay in place: %v", err)
	}
}

func TestRotateName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.log")
	if err := os.WriteFile(path, make([]byte, 10), 0o644); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	if err := rotate(path, 5, now); err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "snake-20240309-140500.log")); err != nil {
		t.Errorf("rotated file missing: %v", err)
	}
}
