package formatter

import (
	"strings"

	"github.com/philipp01105/ntrace/core"
)

// ANSI escape sequences used by the colour decorations
const (
	Reset   = "\x1b[0m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Magenta = "\x1b[35m"
)

// lineEnd terminates every decorated line
const lineEnd = "\r\n"

// Decoration is the text placed around a formatted message
type Decoration struct {
	Prefix string
	Suffix string
}

// Len returns the number of bytes the decoration adds to a message
func (d Decoration) Len() int {
	return len(d.Prefix) + len(d.Suffix)
}

// pre-computed decorations, indexed by level offset from DebugLevel
var (
	colorDecorations = [...]Decoration{
		core.DebugLevel:   {Magenta + "DEBUG: ", Reset + lineEnd},
		core.InfoLevel:    {Green + "INFO: ", Reset + lineEnd},
		core.WarningLevel: {Yellow + "WARNING: ", Reset + lineEnd},
		core.ErrorLevel:   {Red + "ERROR: ", Reset + lineEnd},
		core.PanicLevel:   {Red + "PANIC: ", Reset + lineEnd},
	}
	plainDecorations = [...]Decoration{
		core.DebugLevel:   {"DEBUG: ", lineEnd},
		core.InfoLevel:    {"INFO: ", lineEnd},
		core.WarningLevel: {"WARNING: ", lineEnd},
		core.ErrorLevel:   {"ERROR: ", lineEnd},
		core.PanicLevel:   {"PANIC: ", lineEnd},
	}
	colorNewline = Decoration{Reset, lineEnd}
	plainNewline = Decoration{"", lineEnd}
)

// ForLevel returns the decoration for a leveled message. NoLevel and
// unknown levels get no decoration.
func ForLevel(level core.Level) Decoration {
	if level < core.DebugLevel || int(level) >= len(plainDecorations) {
		return Decoration{}
	}
	if ColorEnabled {
		return colorDecorations[level]
	}
	return plainDecorations[level]
}

// Newline returns the decoration used by Tracelnf: a leading colour reset
// when colour is enabled, and the line terminator.
func Newline() Decoration {
	if ColorEnabled {
		return colorNewline
	}
	return plainNewline
}

// Render writes the decorated message into buf. Prefix, body and suffix go
// through the bounded buffer in that order, so the whole line is truncated
// as one.
func Render(buf *core.TraceBuffer, dec Decoration, format string, args ...any) {
	if dec.Prefix != "" {
		buf.WriteString(dec.Prefix)
	}
	buf.Appendf(format, args...)
	if dec.Suffix != "" {
		buf.WriteString(dec.Suffix)
	}
}

// Undecorate strips the decoration a message of the given level was
// rendered with, if present. The result is a substring of msg.
func Undecorate(level core.Level, msg string) string {
	if dec := ForLevel(level); dec.Len() > 0 {
		return trim(msg, dec)
	}
	return trim(msg, Newline())
}

func trim(msg string, dec Decoration) string {
	// Only a message filling the buffer can have had its suffix cut
	// short. The suffix is ASCII, so such a cut lands exactly on Capacity.
	full := len(msg) >= core.Capacity
	msg = strings.TrimPrefix(msg, dec.Prefix)
	if trimmed, ok := strings.CutSuffix(msg, dec.Suffix); ok {
		return trimmed
	}
	if !full {
		return msg
	}
	for i := len(dec.Suffix) - 1; i > 0; i-- {
		if trimmed, ok := strings.CutSuffix(msg, dec.Suffix[:i]); ok {
			return trimmed
		}
	}
	return msg
}
