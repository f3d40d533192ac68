// Package main hosts the wordscope CLI entrypoint and command graph.
//
// The Cobra-based command tree runs the interactive analysis session by
// default, offers a one-shot analyze command for scripts, and scaffolds or
// validates configuration. It centralizes configuration resolution, flag
// overrides, color detection, and logger setup so subcommands can focus on
// their output.
//
// Keep this package lean: statistics live in internal/textstats, rendering in
// internal/report, and the prompt loop in internal/session.
package main
