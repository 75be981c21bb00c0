package platform

import (
	"os"
	"strings"
)

// Environment variables read by LoadConfig.
const (
	EnvLogPath = "AITOOLS_LOG"
	EnvSort    = "AITOOLS_SORT"
)

// Config is the environment-derived runtime configuration.
type Config struct {
	LogPath     string // debug log destination; empty disables logging
	DefaultSort string // raw sort key; parsed by the catalog package
	Accessible  bool   // NO_COLOR or ACCESSIBLE=1: plain output, no TUI
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() Config {
	return Config{
		LogPath:     strings.TrimSpace(os.Getenv(EnvLogPath)),
		DefaultSort: strings.TrimSpace(os.Getenv(EnvSort)),
		Accessible:  IsAccessible(),
	}
}

// IsAccessible returns true when the environment requests accessible (no-color) output.
// Respects the NO_COLOR standard (https://no-color.org) and ACCESSIBLE=1.
func IsAccessible() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("ACCESSIBLE") == "1"
}
