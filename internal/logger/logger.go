// Package logger provides the component-scoped structured logger used by
// the calculator, backed by zerolog.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-scoped structured logger used across the application
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// LevelFromEnv determines the log level from LOG_LEVEL, falling back to DEBUG=1
func LevelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if os.Getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}
