package testsupport

import (
	"path/filepath"
	"testing"

	"wordscope/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose input and log paths live in a unique temp
// directory per test. Output is plain text without color.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Input.Path = filepath.Join(base, "README.md")
	cfgVal.Output.Format = config.FormatText
	cfgVal.Output.Color = config.ColorNever
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithArticle writes content to the configured input path.
func WithArticle(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Input.Path, content)
	}
}

// WithSearchWords replaces the search word list on the test config.
func WithSearchWords(words ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.SearchWords = config.NormalizeSearchWords(words)
	}
}

// WithLogFile points file logging at logs/wordscope.log under the base dir.
func WithLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, "logs", "wordscope.log")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Input.Path)
}
