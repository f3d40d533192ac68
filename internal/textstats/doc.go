// Package textstats computes descriptive statistics over a block of text.
//
// The five core measures are occurrence counting, the most common word, the
// average word length, and paragraph and sentence counts. Every function is
// pure: identical input yields identical output, and empty or degenerate
// input returns a documented sentinel instead of an error. Analyze bundles all
// of them into a Summary for callers that want one pass over a document.
//
// Occurrence counting is plain case-insensitive substring scanning, so a
// search for "pie" also counts the "pie" inside "piece". Word-based measures
// operate on the words produced by textutil.Words.
package textstats
