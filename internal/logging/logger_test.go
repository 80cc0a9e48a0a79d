package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")

	l, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	l.Info("started", "candidates", 1000)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "started" {
		t.Errorf("msg: expected %q, got %v", "started", entry["msg"])
	}
	if entry["candidates"] != float64(1000) {
		t.Errorf("candidates: expected 1000, got %v", entry["candidates"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")

	l, err := NewLogger(path, LevelError)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	l.Debug("hidden")
	l.Info("hidden")
	l.Error("visible")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("sub-level messages should be filtered out")
	}
	if !strings.Contains(string(data), "visible") {
		t.Error("error-level message missing")
	}
}

func TestWithComponentAndCodePoint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")

	l, err := NewLogger(path, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	child := l.WithComponent("recognition").WithCodePoint(0x1F600)
	child.Warn("service unreachable")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["component"] != "recognition" {
		t.Errorf("component: expected recognition, got %v", entry["component"])
	}
	if entry["code_point"] != "U+1F600" {
		t.Errorf("code_point: expected U+1F600, got %v", entry["code_point"])
	}
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	// Must not panic and Close must be a no-op.
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	if err := l.Close(); err != nil {
		t.Errorf("Close on NopLogger: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != LevelDebug {
		t.Error("lowercase levels should parse")
	}
	if ParseLevel("bogus") != LevelInfo {
		t.Error("unknown levels default to INFO")
	}
	if len(ValidLevels()) != 4 {
		t.Errorf("expected 4 valid levels, got %d", len(ValidLevels()))
	}
}
