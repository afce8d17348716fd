package zaphandler

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/formatter"
)

// ZapHandler forwards trace messages to a zap logger
type ZapHandler struct {
	logger *zap.Logger
	raw    bool
	fields []zap.Field
}

// Option configures a ZapHandler
type Option func(*ZapHandler)

// WithRawMessages keeps the decoration in the logged message
func WithRawMessages() Option {
	return func(h *ZapHandler) { h.raw = true }
}

// WithFields adds fields to every logged message
func WithFields(fields ...zap.Field) Option {
	return func(h *ZapHandler) { h.fields = append(h.fields, fields...) }
}

// NewZapHandler creates a handler writing to logger
func NewZapHandler(logger *zap.Logger, opts ...Option) *ZapHandler {
	h := &ZapHandler{logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleTrace implements handler.Handler
func (h *ZapHandler) HandleTrace(level core.Level, msg string) {
	text := msg
	if !h.raw {
		text = formatter.Undecorate(level, msg)
	}

	ce := h.logger.Check(zapLevel(level), text)
	if ce == nil {
		return
	}
	// Cores may retain the entry; msg is only borrowed.
	ce.Message = strings.Clone(text)
	if level == core.PanicLevel {
		ce.Write(append(h.fields[:len(h.fields):len(h.fields)], zap.Bool("panic", true))...)
		return
	}
	ce.Write(h.fields...)
}

// Sync flushes any buffered log entries
func (h *ZapHandler) Sync() error {
	return h.logger.Sync()
}

// zapLevel converts a core.Level to a zapcore.Level.
func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel, core.PanicLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
