// Package session runs the interactive analysis loop.
//
// A Session loads its document once, then repeatedly renders a report and
// asks whether to run again. Answering "y" (case-insensitive, surrounding
// whitespace ignored) starts another run; any other answer, or end of input,
// ends the session and prints the number of runs performed.
package session
