package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/netmon/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but netmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade netmon or lower the version field")
	}

	if cfg.DetailSamples < 1 || cfg.DetailSamples > MaxDetailSamples {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("detail_samples must be between 1 and %d, got %d", MaxDetailSamples, cfg.DetailSamples),
			"The default is 5")
	}

	if cfg.History < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history must be at least 1, got %d", cfg.History),
			"The default is 60")
	}

	if err := ValidateRefresh(cfg.Refresh); err != nil {
		return err
	}

	if err := ValidateColor(cfg.Output.Color); err != nil {
		return err
	}

	return ValidateFormat(cfg.Output.Format)
}

// ValidateRefresh rejects negative intervals and non-zero intervals shorter
// than MinRefresh.
func ValidateRefresh(d time.Duration) error {
	if d < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval can't be negative: %s", d),
			"Use 0 to refresh manually, or a duration like 2s")
	}
	if d != 0 && d < MinRefresh {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval too short: %s", d),
			"Minimum interval is 500ms")
	}
	return nil
}

// ValidateColor checks an output.color value.
func ValidateColor(color string) error {
	switch color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown color mode '%s'", color),
		"Use auto, always, or never")
}

// ValidateFormat checks an output format value.
func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown output format '%s'", format),
		"Use table, json, or yaml")
}
