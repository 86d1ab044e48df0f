// Package logging configures the process-wide slog logger. The TUI owns
// the terminal, so logs go to a file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/conceptswipe/internal/config"
)

// ParseLevel maps a configured level to slog. "off" reports ok=false.
func ParseLevel(s string) (level slog.Level, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true, nil
	case "", "info":
		return slog.LevelInfo, true, nil
	case "warn", "warning":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	case "off", "none":
		return 0, false, nil
	default:
		return slog.LevelInfo, true, fmt.Errorf("unknown log level %q", s)
	}
}

// DefaultPath returns $XDG_STATE_HOME/conceptswipe/conceptswipe.log,
// falling back to ~/.local/state.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "conceptswipe", "conceptswipe.log"), nil
}

// New builds a logger writing to w.
func New(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, on, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if !on {
		return slog.New(slog.DiscardHandler), nil
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// Setup opens the log file, installs the logger as slog's default and
// returns it with the file to close on exit.
func Setup(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	if _, on, err := ParseLevel(cfg.Level); err != nil {
		return nil, nil, err
	} else if !on {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, io.NopCloser(nil), nil
	}

	path := cfg.File
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger, err := New(f, cfg)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	slog.SetDefault(logger)
	return logger, f, nil
}
