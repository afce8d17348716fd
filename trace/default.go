package trace

import (
	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/handler"
)

var defaultTracer = New(handler.Default())

// Default returns the tracer behind the package-level functions. It
// dispatches through handler.Default().
func Default() *Tracer {
	return defaultTracer
}

// Setup installs h as the process-wide handler, replacing any previous
// one. It must run before the first emission on the normal path.
func Setup(h handler.Handler) {
	handler.Default().Setup(h)
}

// Cleanup removes the process-wide handler. Normal-path emissions panic
// afterwards until Setup is called again.
func Cleanup() {
	handler.Default().Cleanup()
}

// IsSet reports whether a process-wide handler is installed
func IsSet() bool {
	return handler.Default().IsSet()
}

// Package-level convenience functions using the default tracer

// Write dispatches a pre-built message unchanged using the default tracer
func Write(msg string) {
	defaultTracer.Write(msg)
}

// Logf logs a formatted message at the given level using the default tracer
func Logf(level Level, format string, args ...any) {
	defaultTracer.Logf(level, format, args...)
}

// Tracef logs an undecorated formatted message using the default tracer
func Tracef(format string, args ...any) {
	defaultTracer.Tracef(format, args...)
}

// Tracelnf logs a formatted line using the default tracer
func Tracelnf(format string, args ...any) {
	defaultTracer.Tracelnf(format, args...)
}

// Debugf logs a formatted debug message using the default tracer
func Debugf(format string, args ...any) {
	defaultTracer.Debugf(format, args...)
}

// Infof logs a formatted info message using the default tracer
func Infof(format string, args ...any) {
	defaultTracer.Infof(format, args...)
}

// Warningf logs a formatted warning message using the default tracer
func Warningf(format string, args ...any) {
	defaultTracer.Warningf(format, args...)
}

// Errorf logs a formatted error message using the default tracer
func Errorf(format string, args ...any) {
	defaultTracer.Errorf(format, args...)
}

// Panicf logs on the panic-safe path using the default tracer. It never
// panics.
func Panicf(format string, args ...any) {
	defaultTracer.Panicf(format, args...)
}

// The Once functions resolve the call site here rather than in the
// Tracer methods, which would see this file as the caller.

// TracefOnce is Tracef, emitted at most once per call site
func TracefOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	defaultTracer.once(core.CallSite(1), core.NoLevel, false, format, args)
}

// TracelnfOnce is Tracelnf, emitted at most once per call site
func TracelnfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	defaultTracer.once(core.CallSite(1), core.NoLevel, true, format, args)
}

// DebugfOnce is Debugf, emitted at most once per call site
func DebugfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	defaultTracer.once(core.CallSite(1), core.DebugLevel, false, format, args)
}

// InfofOnce is Infof, emitted at most once per call site
func InfofOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	defaultTracer.once(core.CallSite(1), core.InfoLevel, false, format, args)
}

// WarningfOnce is Warningf, emitted at most once per call site
func WarningfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	defaultTracer.once(core.CallSite(1), core.WarningLevel, false, format, args)
}

// ErrorfOnce is Errorf, emitted at most once per call site
func ErrorfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	defaultTracer.once(core.CallSite(1), core.ErrorLevel, false, format, args)
}

// PanicfOnce is Panicf, emitted at most once per call site
func PanicfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	defaultTracer.once(core.CallSite(1), core.PanicLevel, false, format, args)
}
