// Package logging wires zerolog for the desktop and its commands.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logDirPerm = 0o755

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the rotating log file.
type FileConfig struct {
	Enabled       bool
	Path          string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool // Also write to stderr (not while the desktop owns the terminal)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return build(cfg, formatWriter(cfg, os.Stderr))
}

// NewFromEnv creates a logger based on environment variables
// DUMBTOP_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DUMBTOP_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("DUMBTOP_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("DUMBTOP_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// NewWithFile creates a logger that writes to a lumberjack-rotated file and,
// optionally, to stderr. When neither output is enabled the logger is disabled.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var writers []io.Writer
	cleanup := func() {}

	if fileCfg.WriteToStderr {
		writers = append(writers, formatWriter(cfg, os.Stderr))
	}

	if fileCfg.Enabled && fileCfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(fileCfg.Path), logDirPerm); err != nil {
			return zerolog.Nop(), cleanup, err
		}
		rotator := &lumberjack.Logger{
			Filename:   fileCfg.Path,
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   fileCfg.Compress,
		}
		// Files always get JSON so they stay greppable.
		writers = append(writers, rotator)
		cleanup = func() { _ = rotator.Close() }
	}

	switch len(writers) {
	case 0:
		return zerolog.Nop(), cleanup, nil
	case 1:
		return build(cfg, writers[0]), cleanup, nil
	default:
		return build(cfg, zerolog.MultiLevelWriter(writers...)), cleanup, nil
	}
}

// ParseLevel converts a level name into a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func formatWriter(cfg Config, out io.Writer) io.Writer {
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: cfg.TimeFormat,
	}
}

func build(cfg Config, output io.Writer) zerolog.Logger {
	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}
