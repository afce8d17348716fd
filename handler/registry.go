package handler

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/ntrace/core"
)

// ErrNoHandler is the panic value raised when a message is dispatched on
// the normal path before a handler has been set up
var ErrNoHandler = errors.New("trace handler has not been initialized")

// Registry owns the single handler slot
type Registry struct {
	mu    sync.Mutex // critical section for Setup and Cleanup
	slot  atomic.Pointer[registered]
	stats *Stats
}

// registered boxes a Handler so the slot can be swapped atomically
type registered struct {
	handler Handler
}

// NewRegistry creates an empty registry. Most programs use Default instead.
func NewRegistry() *Registry {
	return &Registry{stats: NewStats()}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the trace package
func Default() *Registry {
	return defaultRegistry
}

// Setup installs h as the active handler, replacing any previous one.
// Setup(nil) is equivalent to Cleanup.
func (r *Registry) Setup(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h == nil {
		r.slot.Store(nil)
		return
	}
	r.slot.Store(&registered{handler: h})
}

// Cleanup removes the active handler. Dispatch does not wait on the
// critical section, so a call that loaded the old handler may still be
// running it when Cleanup returns; keep the handler's resources alive
// until such calls have finished.
func (r *Registry) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slot.Store(nil)
}

// IsSet reports whether a handler is installed. It does not enter the
// critical section and is meant for test scaffolding, not control flow.
func (r *Registry) IsSet() bool {
	return r.slot.Load() != nil
}

// Handler returns the active handler, or nil
func (r *Registry) Handler() Handler {
	if reg := r.slot.Load(); reg != nil {
		return reg.handler
	}
	return nil
}

// Dispatch delivers msg to the active handler. It panics with
// ErrNoHandler when no handler is installed.
func (r *Registry) Dispatch(level core.Level, msg string) {
	reg := r.slot.Load()
	if reg == nil {
		panic(ErrNoHandler)
	}
	reg.handler.HandleTrace(level, msg)
	r.stats.IncrementDispatched(level)
}

// DispatchPanic delivers msg to the active handler. With no handler
// installed it does nothing; it never panics on its own account.
func (r *Registry) DispatchPanic(level core.Level, msg string) {
	reg := r.slot.Load()
	if reg == nil {
		r.stats.IncrementDiscarded()
		return
	}
	reg.handler.HandleTrace(level, msg)
	r.stats.IncrementDispatched(level)
}

// Stats returns a snapshot of the registry's counters
func (r *Registry) Stats() Snapshot {
	return r.stats.GetSnapshot()
}

// ResetStats zeroes the registry's counters
func (r *Registry) ResetStats() {
	r.stats.Reset()
}
