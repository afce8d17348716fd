// Package handler provides the Handler interface and the Registry that
// holds the single active handler for the process.
//
// Exactly one handler is active at a time. Setup installs it, replacing
// any previous one without warning, and Cleanup removes it again:
//
//	Unregistered --Setup--> Registered --Cleanup--> Unregistered
//
// Dispatch delivers a message to the active handler. Dispatching with no
// handler installed is a programming error (a forgotten Setup), so it
// panics with ErrNoHandler. DispatchPanic is the variant used while the
// program is already failing: with no handler installed it silently does
// nothing, so tracing can never cause a second failure. Messages are
// never queued or retried across state changes.
//
// Setup and Cleanup run inside the registry's critical section. The slot
// itself is published through an atomic pointer, so Dispatch never
// blocks and a handler that emits traces of its own cannot deadlock
// against the registry.
//
// Handlers provided in sub-packages:
//
//   - consolehandler writes messages to a terminal or any io.Writer,
//     stripping colour when the destination cannot show it.
//   - zaphandler forwards messages to a *zap.Logger.
//   - sloghandler forwards messages to a log/slog handler.
//   - serialhandler frames messages as CBOR for a serial byte channel.
//
// The registry counts dispatched and discarded messages per level via
// the Stats type, which can be queried at runtime.
package handler
