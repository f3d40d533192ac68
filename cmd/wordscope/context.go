package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"wordscope/internal/config"
	"wordscope/internal/logging"
)

type globalFlags struct {
	config string
	file   string
	words  []string
	format string
	color  string
	top    int
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and applies flag overrides on top.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cfg *config.Config) error {
	if file := strings.TrimSpace(c.flags.file); file != "" {
		expanded, err := config.ExpandPath(file)
		if err != nil {
			return fmt.Errorf("resolve --file: %w", err)
		}
		cfg.Input.Path = expanded
	}
	if len(c.flags.words) > 0 {
		words := config.NormalizeSearchWords(c.flags.words)
		if len(words) == 0 {
			return fmt.Errorf("--words: at least one non-blank word is required")
		}
		cfg.Analysis.SearchWords = words
	}
	if format := strings.ToLower(strings.TrimSpace(c.flags.format)); format != "" {
		if err := config.ValidateFormat(format); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
		cfg.Output.Format = format
	}
	if mode := strings.ToLower(strings.TrimSpace(c.flags.color)); mode != "" {
		if err := config.ValidateColor(mode); err != nil {
			return fmt.Errorf("--color: %w", err)
		}
		cfg.Output.Color = mode
	}
	if c.flags.top >= 0 {
		cfg.Analysis.TopWords = c.flags.top
	}
	return nil
}

// loggerValue builds the logger from the loaded config, falling back to a
// no-op logger when construction fails.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.config)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
