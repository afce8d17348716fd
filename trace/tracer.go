package trace

import (
	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/formatter"
	"github.com/philipp01105/ntrace/handler"
)

// Tracer formats messages and dispatches them through a Registry. It
// owns the once-flags of every call site that reaches it through a
// ...Once method.
type Tracer struct {
	registry *handler.Registry
	sites    core.SiteTable
}

// New creates a Tracer dispatching through reg. A nil reg means
// handler.Default().
func New(reg *handler.Registry) *Tracer {
	if reg == nil {
		reg = handler.Default()
	}
	return &Tracer{registry: reg}
}

// Registry returns the registry the tracer dispatches through
func (t *Tracer) Registry() *handler.Registry {
	return t.registry
}

// emit formats a decorated message into a pooled buffer and dispatches
// it on the normal path
func (t *Tracer) emit(level core.Level, dec formatter.Decoration, format string, args []any) {
	buf := core.GetTraceBuffer()
	formatter.Render(buf, dec, format, args...)
	t.registry.Dispatch(level, buf.View())
	core.PutTraceBuffer(buf)
}

// emitPanic is emit for the panic path, where no handler is not an error.
// fmt reports a panicking String or Error method inline as %!v(PANIC=...),
// so formatting cannot unwind out of here either.
func (t *Tracer) emitPanic(format string, args []any) {
	buf := core.GetTraceBuffer()
	formatter.Render(buf, formatter.ForLevel(core.PanicLevel), format, args...)
	t.registry.DispatchPanic(core.PanicLevel, buf.View())
	core.PutTraceBuffer(buf)
}

// logf routes a message by level: PanicLevel takes the panic path, NoLevel
// is emitted undecorated
func (t *Tracer) logf(level core.Level, format string, args []any) {
	if level == core.PanicLevel {
		t.emitPanic(format, args)
		return
	}
	t.emit(level, formatter.ForLevel(level), format, args)
}

// once runs a single emission behind the flag of site
func (t *Tracer) once(site uintptr, level core.Level, newline bool, format string, args []any) {
	if !t.sites.TryFire(site) {
		return
	}
	if newline {
		t.emit(core.NoLevel, formatter.Newline(), format, args)
		return
	}
	t.logf(level, format, args)
}

// Write dispatches a pre-built message unchanged, without formatting,
// decoration or truncation.
func (t *Tracer) Write(msg string) {
	if !Enabled {
		return
	}
	t.registry.Dispatch(core.NoLevel, msg)
}

// Logf logs a formatted message at the given level
func (t *Tracer) Logf(level core.Level, format string, args ...any) {
	if !Enabled {
		return
	}
	t.logf(level, format, args)
}

// Tracef logs a formatted message without decoration
func (t *Tracer) Tracef(format string, args ...any) {
	if !Enabled {
		return
	}
	t.emit(core.NoLevel, formatter.Decoration{}, format, args)
}

// Tracelnf logs a formatted message followed by a line terminator
func (t *Tracer) Tracelnf(format string, args ...any) {
	if !Enabled {
		return
	}
	t.emit(core.NoLevel, formatter.Newline(), format, args)
}

// Debugf logs a debug message with formatting
func (t *Tracer) Debugf(format string, args ...any) {
	if !Enabled {
		return
	}
	t.emit(core.DebugLevel, formatter.ForLevel(core.DebugLevel), format, args)
}

// Infof logs an info message with formatting
func (t *Tracer) Infof(format string, args ...any) {
	if !Enabled {
		return
	}
	t.emit(core.InfoLevel, formatter.ForLevel(core.InfoLevel), format, args)
}

// Warningf logs a warning message with formatting
func (t *Tracer) Warningf(format string, args ...any) {
	if !Enabled {
		return
	}
	t.emit(core.WarningLevel, formatter.ForLevel(core.WarningLevel), format, args)
}

// Errorf logs an error message with formatting
func (t *Tracer) Errorf(format string, args ...any) {
	if !Enabled {
		return
	}
	t.emit(core.ErrorLevel, formatter.ForLevel(core.ErrorLevel), format, args)
}

// Panicf logs a message on the panic-safe path. It does not panic, and
// with no handler installed it does nothing.
func (t *Tracer) Panicf(format string, args ...any) {
	if !Enabled {
		return
	}
	t.emitPanic(format, args)
}

// TracefOnce is Tracef, emitted at most once per call site
func (t *Tracer) TracefOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	t.once(core.CallSite(1), core.NoLevel, false, format, args)
}

// TracelnfOnce is Tracelnf, emitted at most once per call site
func (t *Tracer) TracelnfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	t.once(core.CallSite(1), core.NoLevel, true, format, args)
}

// DebugfOnce is Debugf, emitted at most once per call site
func (t *Tracer) DebugfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	t.once(core.CallSite(1), core.DebugLevel, false, format, args)
}

// InfofOnce is Infof, emitted at most once per call site
func (t *Tracer) InfofOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	t.once(core.CallSite(1), core.InfoLevel, false, format, args)
}

// WarningfOnce is Warningf, emitted at most once per call site
func (t *Tracer) WarningfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	t.once(core.CallSite(1), core.WarningLevel, false, format, args)
}

// ErrorfOnce is Errorf, emitted at most once per call site
func (t *Tracer) ErrorfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	t.once(core.CallSite(1), core.ErrorLevel, false, format, args)
}

// PanicfOnce is Panicf, emitted at most once per call site
func (t *Tracer) PanicfOnce(format string, args ...any) {
	if !Enabled {
		return
	}
	t.once(core.CallSite(1), core.PanicLevel, false, format, args)
}
