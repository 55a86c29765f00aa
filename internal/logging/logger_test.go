package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rymgap/internal/logging"
)

func TestConsoleLoggerWritesKeyValueLine(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("sweep starting", logging.Args(
		logging.String("imdb_id", "tt0000001"),
		logging.Int("fetched", 3),
	)...)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, "INFO sweep starting") {
		t.Fatalf("expected level and message, got %q", line)
	}
	if !strings.Contains(line, "imdb_id=tt0000001") || !strings.Contains(line, "fetched=3") {
		t.Fatalf("expected attributes, got %q", line)
	}
}

func TestConsoleLoggerDropsBelowLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "warn",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("kept")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), "suppressed") {
		t.Fatalf("expected info line to be dropped, got %q", content)
	}
	if !strings.Contains(string(content), "kept") {
		t.Fatalf("expected warn line, got %q", content)
	}
}

func TestJSONLoggerEmitsRenamedKeys(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.json")

	logger, err := logging.New(logging.Options{
		Format:      "json",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("verified", logging.Args(logging.Bool("present", true))...)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(content, &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["msg"] != "verified" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
	if _, ok := entry["ts"].(string); !ok {
		t.Fatalf("expected string ts, got %v", entry["ts"])
	}
	if entry["present"] != true {
		t.Fatalf("expected present attribute, got %v", entry["present"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(nil, 0) {
		t.Fatal("expected no-op logger to be disabled")
	}
	logger.Error("ignored", logging.Args(logging.Error(nil))...)
}
