// Package logging sets up slog for a tool whose stdout and stderr both
// belong to the host's render loop: log output goes to a file, or nowhere.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Discard returns a logger that drops everything. The default in normal
// operation: the render path must stay silent apart from stdout.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Setup returns a file-backed logger when level is non-empty, and a
// discard logger otherwise. The caller should defer the closer.
func Setup(level string) (*slog.Logger, io.Closer) {
	if level == "" {
		return Discard(), io.NopCloser(nil)
	}
	path, err := defaultLogPath()
	if err != nil {
		return Discard(), io.NopCloser(nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Discard(), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return Discard(), io.NopCloser(nil)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler), f
}

func defaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "claudeline", "claudeline.log"), nil
}

// ParseLevel converts a level string to slog.Level. Defaults to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
