// Package trace is the public API of ntrace. Most users only need to
// import this package.
//
// Install a handler once at startup, then emit from anywhere:
//
//	trace.Setup(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{}))
//	defer trace.Cleanup()
//
//	trace.Infof("link up at %d baud", 115200)
//	trace.Warningf("retrying %s", name)
//
// Every emission formats into a fixed-capacity core.TraceBuffer (see
// core.Capacity) and hands a borrowed view of it to the handler. Output
// longer than the capacity is truncated silently. Leveled forms wrap the
// message in the level's decoration, which counts against the capacity.
//
// Emitting on the normal path without a handler is a programming error
// and panics with handler.ErrNoHandler. Panicf is the exception: it is
// meant for code that runs while the program is already failing, such as
// a deferred recover, so with no handler it does nothing at all. Despite
// its name Panicf never panics.
//
// The ...Once variants emit at most once per call site for the lifetime
// of the process. A call site is one call expression in the source: the
// same line executed in a loop is one site, two calls on different lines
// are two sites. Only the first caller formats and dispatches; later
// callers return immediately.
//
// Building with the ntrace_disable tag sets Enabled to false, which turns
// every emission function into an empty function the compiler can remove
// (arguments are still evaluated by the caller, as with any Go call).
// Setup and Cleanup keep working.
package trace
