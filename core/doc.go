// Package core defines the shared types used across the ntrace façade.
//
// It provides the Level type, the fixed-capacity TraceBuffer that every
// message is formatted into, and the OnceFlag that gates the "once"
// emission variants.
//
// A TraceBuffer holds at most Capacity bytes of valid UTF-8; invalid
// input bytes are replaced with U+FFFD. Writes past that point are
// silently dropped: overflow is truncation, never an error. Truncation
// always stops on a UTF-8 code point boundary, and once a write has been
// cut short the buffer is sealed so its content stays a prefix of the
// full rendering. The emission path takes buffers from a sync.Pool via
// GetTraceBuffer and returns them with PutTraceBuffer once the handler
// has consumed the message, which keeps steady-state tracing free of
// heap allocations.
//
// OnceFlag is a single atomic boolean. SiteTable maps call-site tokens
// (see CallSite) to flags so that each source location calling a "once"
// variant owns exactly one flag for the lifetime of the process. There
// is no way to reset a flag.
//
// Capacity is a build-time constant: 1024 bytes by default, 256 bytes
// when built with the ntrace_small tag.
package core
