package handler

import (
	"github.com/philipp01105/ntrace/core"
)

// Handler defines the interface for trace sinks
type Handler interface {
	// HandleTrace consumes one formatted message. msg is only valid for the
	// duration of the call and must not be retained. Implementations must
	// not panic and must be safe for concurrent use.
	HandleTrace(level core.Level, msg string)
}

// HandlerFunc adapts an ordinary function to the Handler interface
type HandlerFunc func(level core.Level, msg string)

// HandleTrace calls f(level, msg)
func (f HandlerFunc) HandleTrace(level core.Level, msg string) {
	f(level, msg)
}

// Discard is a Handler that drops every message. Registering it turns
// tracing into a no-op without making normal-path dispatch fatal.
var Discard Handler = discard{}

type discard struct{}

func (discard) HandleTrace(core.Level, string) {}
