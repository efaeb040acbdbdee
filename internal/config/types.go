package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
const CurrentConfigVersion = 1

// Output formats accepted by the non-interactive commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Limits enforced by Validate.
const (
	MinRefresh       = 500 * time.Millisecond
	MaxDetailSamples = 50
)

// Config represents the complete .netmon.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Seed for the random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	// DetailSamples is how many fresh values the detail view generates.
	DetailSamples int `yaml:"detail_samples" mapstructure:"detail_samples"`

	// History is how many past summary values each card keeps for its sparkline.
	History int `yaml:"history" mapstructure:"history"`

	// Refresh regenerates the summary on a timer. Zero means manual refresh only.
	Refresh time.Duration `yaml:"refresh" mapstructure:"refresh"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when stdout is not a terminal.
	Color string `yaml:"color" mapstructure:"color"`

	// Format for snapshot/detail/metrics output: "table", "json", or "yaml".
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:       CurrentConfigVersion,
		Seed:          0,
		DetailSamples: 5,
		History:       60,
		Refresh:       0,
		Output: OutputConfig{
			Color:  ColorAuto,
			Format: FormatTable,
		},
	}
}
