package config

import "os"

// Overrides carries flag values. Empty or nil fields leave the setting alone.
type Overrides struct {
	ConfigPath string
	Verbose    *bool
	LogJSON    *bool
}

// Resolve builds the effective settings: defaults, then the preferences file
// (prefsPath, else SORTER_PREFS, else DefaultPrefsPath), then environment
// variables, then flag overrides.
func Resolve(prefsPath string, o Overrides) (Settings, error) {
	if prefsPath == "" {
		prefsPath = os.Getenv(EnvPrefs)
	}
	if prefsPath == "" {
		prefsPath = DefaultPrefsPath()
	}

	s, err := Load(expandHome(prefsPath))
	if err != nil {
		return Settings{}, err
	}

	ApplyEnvOverrides(&s)

	if o.ConfigPath != "" {
		s.ConfigPath = expandHome(o.ConfigPath)
	}
	if o.Verbose != nil {
		s.Verbose = *o.Verbose
	}
	if o.LogJSON != nil && *o.LogJSON {
		s.LogFormat = LogFormatJSON
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
