// Package logger wraps log/slog with the level/format configuration the
// CLI needs. The codec library itself never imports this package — a
// library that logs on a caller's behalf is a poor dependency — it is
// used only by cmd/cdrdump.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the logger's level and output format.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// New builds a slog.Logger writing to w per cfg. Unknown Level/Format
// values fall back to info/text.
func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
