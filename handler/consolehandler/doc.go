// Package consolehandler provides a handler that writes trace messages to
// a terminal or any io.Writer (default: os.Stdout).
//
// Messages arrive fully decorated, so the handler writes them verbatim.
// Colour handling is controlled by ColorMode. In ColorAuto mode escape
// sequences are stripped when stdout is not a terminal or NO_COLOR is
// set, and for other *os.File destinations when they are not terminals.
// On Windows the default stdout writer translates ANSI sequences into
// console API calls.
//
// The handler writes synchronously and never retains a message after
// HandleTrace returns.
package consolehandler
