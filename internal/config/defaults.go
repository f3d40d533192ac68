package config

const (
	defaultInputPath          = "README.md"
	defaultLockTimeoutSeconds = 5
	defaultTopWords           = 0
	defaultOutputFormat       = FormatText
	defaultColorMode          = ColorAuto
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

var defaultSearchWords = []string{"apple", "machine", "technology", "baking", "pie"}

// DefaultSearchWords returns a copy of the built-in search word list.
func DefaultSearchWords() []string {
	out := make([]string, len(defaultSearchWords))
	copy(out, defaultSearchWords)
	return out
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			Path:               defaultInputPath,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Analysis: Analysis{
			SearchWords: DefaultSearchWords(),
			TopWords:    defaultTopWords,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultColorMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
