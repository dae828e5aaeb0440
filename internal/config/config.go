// Package config holds the fseof command's environment settings, the YAML
// scan file format and the logger setup.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// Env holds the values read from the environment.
type Env struct {
	// Logging
	LogFile  string
	LogLevel slog.Level

	// StorePath is the default run database; empty disables persistence.
	StorePath string
}

// Load reads configuration from environment variables.
func Load() Env {
	return Env{
		LogFile:   getEnv("FSEOF_LOG_FILE", ""),
		LogLevel:  ParseLogLevel(getEnv("FSEOF_LOG_LEVEL", "WARN")),
		StorePath: getEnv("FSEOF_STORE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// ParseLogLevel maps DEBUG, INFO, WARN/WARNING and ERROR (any case) to a
// slog level. Anything else is INFO.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
