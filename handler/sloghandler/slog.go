package sloghandler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/formatter"
)

// SlogHandler forwards trace messages to a slog.Handler
type SlogHandler struct {
	handler slog.Handler
}

// NewSlogHandler creates a new adapter writing to h
func NewSlogHandler(h slog.Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// HandleTrace implements handler.Handler
func (s *SlogHandler) HandleTrace(level core.Level, msg string) {
	ctx := context.Background()
	lvl := coreLevelToSlog(level)
	if !s.handler.Enabled(ctx, lvl) {
		return
	}

	// A slog.Handler may keep the record; msg must not escape the call.
	text := strings.Clone(formatter.Undecorate(level, msg))
	record := slog.NewRecord(time.Now(), lvl, text, 0)
	if level == core.PanicLevel {
		record.AddAttrs(slog.Bool("panic", true))
	}
	// Handlers must not fail the caller; errors are dropped.
	_ = s.handler.Handle(ctx, record)
}

// coreLevelToSlog converts a core.Level to a slog.Level.
func coreLevelToSlog(level core.Level) slog.Level {
	switch level {
	case core.DebugLevel:
		return slog.LevelDebug
	case core.WarningLevel:
		return slog.LevelWarn
	case core.ErrorLevel, core.PanicLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
