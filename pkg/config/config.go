// Package config provides configuration management for pinclean.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Clean: sheet, name_column, code_column, delimiter
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Clean.DryRun, Clean.Backup (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PINCLEAN_ prefix with underscores for nesting:
//
//	PINCLEAN_CLEAN_SHEET=dw_eagle_sale2_atm
//	PINCLEAN_CLEAN_NAME_COLUMN=clientname
//	PINCLEAN_LOG_LEVEL=info
package config

// Config represents the complete pinclean configuration.
type Config struct {
	// Clean contains settings for the clean command.
	Clean CleanConfig `mapstructure:"clean" yaml:"clean"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// CleanConfig contains settings for the spreadsheet cleaning run.
type CleanConfig struct {
	// Sheet is the name of the worksheet to clean.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	// NameColumn is the header of the column holding person names.
	// The pinyin code is derived from this column's values.
	NameColumn string `mapstructure:"name_column" yaml:"name_column"`

	// CodeColumn is the header of the column holding composite
	// identifiers whose first segment carries the pinyin code.
	CodeColumn string `mapstructure:"code_column" yaml:"code_column"`

	// Delimiter separates segments of the composite identifier.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// DryRun skips the save step; the file is left untouched.
	// Runtime-only field.
	DryRun bool

	// Backup copies the file next to itself before saving.
	// Runtime-only field.
	Backup bool
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Clean: CleanConfig{
			Sheet:      "dw_eagle_sale2_atm",
			NameColumn: "clientname",
			CodeColumn: "patientcode",
			Delimiter:  "_",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
