package trace

import (
	"strings"

	"github.com/philipp01105/ntrace/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoLevel      = core.NoLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	PanicLevel   = core.PanicLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "NONE":
		return NoLevel
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "ERROR":
		return ErrorLevel
	case "PANIC":
		return PanicLevel
	default:
		return InfoLevel
	}
}
