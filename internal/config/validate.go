package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateInput() error {
	if c.Input.Path == "" {
		return errors.New("input.path must be set")
	}
	if c.Input.LockTimeoutSeconds < 0 {
		return errors.New("input.lock_timeout_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if len(c.Analysis.SearchWords) == 0 {
		return errors.New("analysis.search_words must contain at least one word")
	}
	if c.Analysis.TopWords < 0 {
		return errors.New("analysis.top_words must be >= 0")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if err := ValidateFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if err := ValidateColor(c.Output.Color); err != nil {
		return fmt.Errorf("output.color: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

// ValidateFormat reports whether format names a known report format.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported value %q (use text, table, or json)", format)
	}
}

// ValidateColor reports whether mode names a known color mode.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("unsupported value %q (use auto, always, or never)", mode)
	}
}
