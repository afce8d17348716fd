// Package zaphandler forwards trace messages to a *zap.Logger.
//
// The message decoration is stripped and the level mapped onto zap's
// levels. Panic-path messages are logged at zap's ErrorLevel with a
// panic=true field: a trace handler must never panic, so zap's own
// panicking levels are never used.
package zaphandler
