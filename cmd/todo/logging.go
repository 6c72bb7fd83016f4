package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// parseLevel maps a config log_level to a console log level. Unknown values mean warn.
func parseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// newLogger returns a leveled console logger on w, wrapped as a slog.Logger
// for the store and MCP paths. The returned console logger is the handler;
// --verbose raises its level.
func newLogger(w io.Writer, level string) (*slog.Logger, *log.Logger) {
	console := log.NewWithOptions(w, log.Options{
		Level:     parseLevel(level),
		Formatter: log.TextFormatter,
		Prefix:    "todo",
	})
	return slog.New(console), console
}
