package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptCleanSheet sets the worksheet name to clean.
func OptCleanSheet(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sheet Name", s) {
			c.Clean.Sheet = s
		}
	}
}

// OptCleanNameColumn sets the header of the person-name column.
func OptCleanNameColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Name Column", s) {
			c.Clean.NameColumn = s
		}
	}
}

// OptCleanCodeColumn sets the header of the composite-identifier column.
func OptCleanCodeColumn(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Code Column", s) {
			c.Clean.CodeColumn = s
		}
	}
}

// OptCleanDelimiter sets the segment delimiter of composite identifiers.
// Unlike other string options it is not trimmed: a delimiter may be
// any single non-empty string.
func OptCleanDelimiter(s string) Option {
	return func(c *Config) {
		if isValidString("Delimiter", s) {
			c.Clean.Delimiter = s
		}
	}
}

// OptCleanDryRun disables the save step.
// Runtime-only field - not in ToOptions().
func OptCleanDryRun(b bool) Option {
	return func(c *Config) {
		c.Clean.DryRun = b
	}
}

// OptCleanBackup enables a file copy before saving.
// Runtime-only field - not in ToOptions().
func OptCleanBackup(b bool) Option {
	return func(c *Config) {
		c.Clean.Backup = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
