// Package logger builds the zap logger used by the terminal site. Stdout
// belongs to the TUI, so output always goes to a file.
package logger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration.
type Config struct {
	Path  string // log file; empty disables logging
	Level string
	Debug bool // overrides Level
}

// New creates a file-backed production logger tagged with a per-run session id.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.Path}
	zc.ErrorOutputPaths = []string{cfg.Path}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l.With(zap.String("session", uuid.NewString())), nil
}

// ParseLevel converts a string to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
