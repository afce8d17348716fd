// Package sloghandler provides an adapter from trace messages to a
// log/slog.Handler, allowing a program that already logs through the
// standard library to receive trace output in the same stream.
//
// Decorations (colour escapes, level label, line terminator) are
// stripped because slog records carry the level on their own. Panic-path
// messages are logged at slog.LevelError with a panic=true attribute.
package sloghandler
