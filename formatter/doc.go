// Package formatter defines how trace messages are decorated before they
// reach a handler.
//
// Every leveled message is wrapped in a Decoration: a label prefix such
// as "DEBUG: " and a "\r\n" line terminator. When colour output is
// compiled in (the default), the prefix also carries the ANSI colour
// escape for the level and the suffix resets it with "\x1b[0m". Building
// with the ntrace_nocolor tag switches every decoration to its plain
// form. The choice is a constant, so no branch is taken at run time.
//
// Decorations are rendered into the same bounded core.TraceBuffer as the
// message body, so label and escape bytes count against the buffer's
// capacity. A long message can therefore lose its suffix to truncation.
//
// Structured handlers that carry the level on their own (zap, slog) use
// Undecorate to recover the bare message text.
package formatter
