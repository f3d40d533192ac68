// Package source loads the text documents the analyzer works on.
//
// Load reads a file as UTF-8 under a shared advisory lock and normalizes line
// endings. Failures are classified with sentinel errors so callers can tell a
// missing file (ErrNotFound) from every other read problem.
package source
