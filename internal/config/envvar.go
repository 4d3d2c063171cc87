package config

import (
	"os"
	"strings"
)

// Environment variable names for sorter preferences.
const (
	EnvConfig    = "SORTER_CONFIG"     // Path to the config file to edit
	EnvPrefs     = "SORTER_PREFS"      // Path to the preferences file
	EnvDebug     = "SORTER_DEBUG"      // Enable debug logging ("1" or "true")
	EnvLogFormat = "SORTER_LOG_FORMAT" // "text" or "json"
)

// ApplyEnvOverrides applies SORTER_* environment variables to s.
func ApplyEnvOverrides(s *Settings) {
	if path := os.Getenv(EnvConfig); path != "" {
		s.ConfigPath = expandHome(path)
	}
	if debug := os.Getenv(EnvDebug); debug != "" {
		s.Verbose = isTruthy(debug)
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		s.LogFormat = strings.ToLower(format)
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
