// Package logging assembles structured slog loggers and formatting helpers used
// across wordscope.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and offers helpers that tag log lines with component names and
// the interactive session ID. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Console output goes to stderr so the report printed on stdout stays clean.
// When a log file is configured it receives the same records as JSON.
package logging
