package main

import (
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"

	"wordscope/internal/config"
)

// colorEnabled resolves a color mode against the writer the report goes to
// and configures gookit/color to match. "always" forces escape codes even when
// TERM gives no color support; "never" turns rendering off.
func colorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		color.Enable = true
		color.ForceColor()
		return true
	case config.ColorNever:
		color.Enable = false
		return false
	default:
		color.Enable = true
		return isTerminal(writer)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
