package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file name and rotation limits
const (
	FileName = "memos-desktop.log"

	MaxSizeMB  = 5
	MaxBackups = 3
	MaxAgeDays = 30
)

// Logger wraps a zerolog logger together with the rotating file sink that
// feeds it
type Logger struct {
	zerolog.Logger

	rotator *lumberjack.Logger
}

// New creates a logger writing human-readable lines to stderr and JSON lines
// to a rotated file under dir. The directory is created on the first write.
// Level accepts zerolog level names; anything unknown falls back to info.
func New(dir, level string) *Logger {
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dir, FileName),
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
		Compress:   true,
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	log := zerolog.New(io.MultiWriter(console, rotator)).
		Level(parseLevel(level)).
		With().Timestamp().Logger()

	return &Logger{Logger: log, rotator: rotator}
}

// WithComponent returns a sub-logger tagged with the component name
func (l *Logger) WithComponent(name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Close closes the rotating file sink
func (l *Logger) Close() error {
	if l.rotator != nil {
		return l.rotator.Close()
	}
	return nil
}

// parseLevel maps a level name to a zerolog level, defaulting to info
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
