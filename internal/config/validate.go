package config

import (
	"fmt"
	"strings"
)

// Validate checks s and returns an error describing every invalid field,
// or nil if all fields are valid.
func (s Settings) Validate() error {
	var errs []string

	if s.ConfigPath == "" {
		errs = append(errs, "config_path: must not be empty")
	}

	switch s.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Sprintf(
			"log_format: invalid value %q (allowed: %s, %s)",
			s.LogFormat, LogFormatText, LogFormatJSON))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("preferences validation failed:\n  %s", strings.Join(errs, "\n  "))
}
