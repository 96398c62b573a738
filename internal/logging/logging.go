// Package logging provides the structured logger shared by leaseq's
// CLI and demo worker.
package logging

import (
	"os"

	"github.com/phuslu/log"
)

// New builds a console logger at the given level ("trace", "debug",
// "info", "warn", "error"). An unrecognized level falls back to info.
func New(level string) *log.Logger {
	l := &log.Logger{
		Level:      parseLevel(level),
		Writer:     &log.ConsoleWriter{Writer: os.Stderr},
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	}
	return l
}

// Default returns an info-level console logger.
func Default() *log.Logger {
	return New("info")
}

func parseLevel(level string) log.Level {
	switch level {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
