package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/handler"
)

// ColorMode selects how ANSI escape sequences in messages are treated
type ColorMode int

const (
	// ColorAuto keeps colour only when the destination is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways passes escape sequences through unchanged
	ColorAlways
	// ColorNever strips escape sequences before writing
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "auto", "always" or "never" to a ColorMode.
// Anything else yields ColorAuto.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout, with ANSI translation on Windows)
	Writer io.Writer
	// Color selects colour handling (default: ColorAuto)
	Color ColorMode
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When true, the handler skips write-level locking. Automatically
	// detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// ConsoleHandler writes every message verbatim to a writer. Messages are
// already decorated and terminated by the emitting call, so nothing is
// added.
type ConsoleHandler struct {
	writer         io.Writer
	concurrentSafe bool // true if writer is safe for concurrent Write calls
	mu             sync.Mutex
	stats          *handler.Stats
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	defaultStdout := cfg.Writer == nil
	if defaultStdout {
		cfg.Writer = colorable.NewColorableStdout()
	}

	w := cfg.Writer
	concurrentSafe := cfg.ConcurrentWriter || isConcurrentSafeWriter(w)
	if stripColor(cfg, defaultStdout) {
		// NonColorable parses escapes across several writes.
		w = colorable.NewNonColorable(w)
		concurrentSafe = false
	}

	return &ConsoleHandler{
		writer:         w,
		concurrentSafe: concurrentSafe,
		stats:          handler.NewStats(),
	}
}

// stripColor decides whether escape sequences must be removed
func stripColor(cfg ConsoleConfig, defaultStdout bool) bool {
	switch cfg.Color {
	case ColorAlways:
		return false
	case ColorNever:
		return true
	}
	if defaultStdout {
		// Honours NO_COLOR and a non-terminal stdout.
		return color.NoColor
	}
	if f, ok := cfg.Writer.(*os.File); ok {
		return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// HandleTrace writes msg to the configured writer. Write errors are
// counted as discarded messages; they are never reported to the caller.
func (h *ConsoleHandler) HandleTrace(level core.Level, msg string) {
	var err error
	if h.concurrentSafe {
		_, err = io.WriteString(h.writer, msg)
	} else {
		h.mu.Lock()
		_, err = io.WriteString(h.writer, msg)
		h.mu.Unlock()
	}

	if err != nil {
		h.stats.IncrementDiscarded()
		return
	}
	h.stats.IncrementDispatched(level)
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}
