package textstats

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"wordscope/internal/textutil"
)

// sentenceSplitPattern matches runs of sentence-ending punctuation.
var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

const paragraphSeparator = "\n\n"

// CountOccurrences returns the number of non-overlapping, case-insensitive
// occurrences of word within text. Matching is substring based, not
// word-boundary based. Returns 0 when either input is empty.
func CountOccurrences(text, word string) int {
	if text == "" || word == "" {
		return 0
	}
	return strings.Count(textutil.Lower(text), textutil.Lower(word))
}

// CountParagraphs returns the number of non-blank segments separated by a
// blank line. Returns 1 for empty input or when no paragraph has content.
func CountParagraphs(text string) int {
	return countNonBlank(strings.Split(text, paragraphSeparator))
}

// CountSentences returns the number of non-blank segments separated by runs of
// '.', '!' or '?'. Returns 1 for empty input or when no sentence has content.
func CountSentences(text string) int {
	return countNonBlank(sentenceSplitPattern.Split(text, -1))
}

// CountCharacters returns the number of characters (runes) in text.
func CountCharacters(text string) int {
	return utf8.RuneCountInString(text)
}

// CountWords returns the number of whitespace-separated fields in text,
// punctuation included.
func CountWords(text string) int {
	return len(textutil.Fields(text))
}

func countNonBlank(segments []string) int {
	count := 0
	for _, segment := range segments {
		if textutil.TrimSpace(segment) != "" {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}
