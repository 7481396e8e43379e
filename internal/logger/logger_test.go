package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, test := range tests {
		result := parseLevel(test.input)
		if result != test.expected {
			t.Errorf("parseLevel(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestNew_WritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log := New(dir, "debug")
	log.Info().Str("component", "test").Msg("hello")
	if err := log.Close(); err != nil {
		t.Fatalf("Failed to close logger: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("Expected log file to contain the message, got: %s", data)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	dir := t.TempDir()

	log := New(dir, "warn")
	log.Debug().Msg("filtered out")
	log.Warn().Msg("kept")
	log.Close()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "filtered out") {
		t.Error("Expected debug message to be filtered at warn level")
	}
	if !strings.Contains(content, "kept") {
		t.Errorf("Expected warn message to be written, got: %s", content)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := &Logger{Logger: zerolog.New(&buf)}

	sub := log.WithComponent("shell")
	sub.Info().Msg("started")

	if !strings.Contains(buf.String(), `"component":"shell"`) {
		t.Errorf("Expected component field in output, got: %s", buf.String())
	}
}
