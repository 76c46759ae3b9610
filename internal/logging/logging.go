// Package logging installs a log/slog handler behind the standard log
// package. Lines written with a "[LEVEL] " prefix are logged at that level,
// so the --log-level flag filters them.
package logging

import (
	"bytes"
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// NewLogger creates a text or JSON logger writing to w
func NewLogger(w io.Writer, level string, jsonLogs bool) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug && jsonLogs,
	}

	var handler slog.Handler
	if jsonLogs {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Setup makes a new logger the default for both slog and log
func Setup(level string, jsonLogs bool) *slog.Logger {
	logger := NewLogger(os.Stderr, level, jsonLogs)
	slog.SetDefault(logger)

	log.SetFlags(0)
	log.SetOutput(&Writer{Logger: logger})
	return logger
}

// WithComponent returns a logger with component attribute
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}

// WithSessionID returns a logger with session_id attribute
func WithSessionID(logger *slog.Logger, sessionID string) *slog.Logger {
	return logger.With("session_id", sessionID)
}

// Writer adapts log package output to a slog logger
type Writer struct {
	Logger *slog.Logger
}

var prefixes = []struct {
	tag   string
	level slog.Level
}{
	{"[DEBUG]", slog.LevelDebug},
	{"[INFO]", slog.LevelInfo},
	{"[WARN]", slog.LevelWarn},
	{"[WARNING]", slog.LevelWarn},
	{"[ERROR]", slog.LevelError},
}

func (w *Writer) Write(p []byte) (int, error) {
	msg := string(bytes.TrimRight(p, "\n"))
	level := slog.LevelInfo
	for _, prefix := range prefixes {
		if strings.HasPrefix(msg, prefix.tag) {
			level = prefix.level
			msg = strings.TrimSpace(msg[len(prefix.tag):])
			break
		}
	}
	w.Logger.Log(context.Background(), level, msg)
	return len(p), nil
}
