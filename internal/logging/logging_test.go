package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFallbackWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Fallback: &buf, Level: "debug"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer closeFn()

	logger.Debug("apple eaten", "length", 4)
	out := buf.String()
	if !strings.Contains(out, "apple eaten") || !strings.Contains(out, "length=4") {
		t.Errorf("unexpected log output: %q", out)
	}
	if !strings.Contains(out, "snake") {
		t.Errorf("log output should carry the prefix: %q", out)
	}
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Fallback: &buf, Level: "warn"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")
	logger, closeFn, err := New(Options{Path: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("session started")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file content = %q", data)
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("New() should reject an unknown level")
	}
}
