package logger

import "strings"

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New returns a console logger at the given level. Unknown levels fall back to debug.
func New(level string) *Logger {
	return newZapLogger(strings.ToLower(strings.TrimSpace(level)))
}
