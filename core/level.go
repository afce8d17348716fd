package core

// Level represents the severity of a trace message
type Level int8

const (
	// NoLevel marks unleveled output such as Tracef and raw writes
	NoLevel Level = iota - 1
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// PanicLevel for messages emitted on the panic-safe path
	PanicLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case NoLevel:
		return "NONE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case PanicLevel:
		return "PANIC"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the defined levels
func (l Level) Valid() bool {
	return l >= NoLevel && l <= PanicLevel
}
