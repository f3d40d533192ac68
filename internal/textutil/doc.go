// Package textutil provides the text normalization shared by the statistics
// code: case folding, punctuation stripping, word splitting, and newline
// normalization.
//
// Words are maximal runs of word characters (letters, numbers, underscore)
// left after every other non-whitespace rune has been removed. Whitespace is
// the Unicode whitespace class, so tabs, newlines, and no-break spaces all
// separate words.
package textutil
