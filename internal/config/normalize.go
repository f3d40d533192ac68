package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeInput(); err != nil {
		return err
	}
	c.normalizeAnalysis()
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeInput() error {
	if value, ok := os.LookupEnv("WORDSCOPE_INPUT"); ok && strings.TrimSpace(value) != "" {
		c.Input.Path = value
	}
	c.Input.Path = strings.TrimSpace(c.Input.Path)
	if c.Input.Path == "" {
		c.Input.Path = defaultInputPath
	}
	var err error
	if c.Input.Path, err = expandPath(c.Input.Path); err != nil {
		return fmt.Errorf("input.path: %w", err)
	}
	if c.Input.LockTimeoutSeconds == 0 {
		c.Input.LockTimeoutSeconds = defaultLockTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeAnalysis() {
	c.Analysis.SearchWords = NormalizeSearchWords(c.Analysis.SearchWords)
	if len(c.Analysis.SearchWords) == 0 {
		c.Analysis.SearchWords = DefaultSearchWords()
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColorMode
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("WORDSCOPE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

// NormalizeSearchWords trims the entries, drops blanks, and removes
// case-insensitive duplicates while keeping the first spelling and order.
func NormalizeSearchWords(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		trimmed := strings.TrimSpace(word)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
