package observability

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultRotateBytes is the log file size threshold that triggers rotation.
const DefaultRotateBytes = 10 * 1024 * 1024

// fallback logger before Init, JSON to stderr.
var logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

// Logger returns the process-wide logger.
func Logger() *slog.Logger {
	return logger
}

// Init points the process logger at a size-rotated log file.
// The parent directory is created if absent. The returned closer
// flushes and closes the underlying file.
func Init(path string, maxBytes int64) (func() error, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultRotateBytes
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	w, err := newRotatingWriter(path, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return w.Close, nil
}

// DefaultLogPath resolves the log file path in priority order:
// 1. LEARNMATE_LOG environment variable
// 2. $XDG_STATE_HOME/learnmate/learnmate.log
// 3. ~/.local/state/learnmate/learnmate.log
func DefaultLogPath() (string, error) {
	if p := os.Getenv("LEARNMATE_LOG"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	return filepath.Join(stateHome, "learnmate", "learnmate.log"), nil
}
