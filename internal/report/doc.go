// Package report turns a loaded document into an analysis report and renders
// it for the terminal.
//
// Build runs the text statistics once per analysis run and counts the
// configured search words. Render writes the result in one of three formats:
// the classic bullet-list text layout, go-pretty tables, or indented JSON.
package report
