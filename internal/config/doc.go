// Package config loads, normalizes, and validates wordscope configuration.
//
// It supplies defaults that reproduce the classic analyzer (README.md as the
// input, the apple/machine/technology/baking/pie search list), expands user
// paths including tilde shortcuts, reads TOML files, and honours environment
// overrides such as WORDSCOPE_INPUT.
//
// Always obtain settings through this package so commands receive expanded
// paths, canonical output and log formats, and clear validation errors.
package config
