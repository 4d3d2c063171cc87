// Package config handles sorter's own preferences: which config file the
// editor operates on and how it logs.
//
// Preferences come from, lowest priority first: built-in defaults, an
// optional preferences file (YAML or TOML, picked by extension), SORTER_*
// environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the directory name used under the user config directory.
	AppDir = "file-sorter"

	// ConfigFileName is the default name of the sorter config file.
	ConfigFileName = "config.conf"

	// PrefsFileName is the default name of the preferences file.
	PrefsFileName = "sorter.yaml"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings represents the contents of the preferences file.
type Settings struct {
	ConfigPath string `yaml:"config_path" toml:"config_path"`
	Verbose    bool   `yaml:"verbose" toml:"verbose"`
	LogFormat  string `yaml:"log_format" toml:"log_format"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		ConfigPath: filepath.Join(userConfigDir(), AppDir, ConfigFileName),
		LogFormat:  LogFormatText,
	}
}

// DefaultPrefsPath returns where the preferences file is looked for when no
// path is given.
func DefaultPrefsPath() string {
	return filepath.Join(userConfigDir(), AppDir, PrefsFileName)
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}

// Load reads the preferences file at path over the defaults. A missing file
// yields the defaults. Files ending in .toml are parsed as TOML, anything
// else as YAML.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return Settings{}, fmt.Errorf("reading preferences %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".toml") {
		if err := toml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parsing TOML preferences %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parsing YAML preferences %s: %w", path, err)
		}
	}

	if s.ConfigPath == "" {
		s.ConfigPath = Default().ConfigPath
	}
	if s.LogFormat == "" {
		s.LogFormat = LogFormatText
	}
	s.ConfigPath = expandHome(s.ConfigPath)

	return s, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
