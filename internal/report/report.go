package report

import (
	"wordscope/internal/source"
	"wordscope/internal/textstats"
)

// Occurrence is the substring count of one search word.
type Occurrence struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Report is the outcome of one analysis run.
type Report struct {
	Run         int               `json:"run"`
	SessionID   string            `json:"session_id,omitempty"`
	Source      string            `json:"source"`
	Summary     textstats.Summary `json:"summary"`
	Occurrences []Occurrence      `json:"occurrences"`
}

// Build analyzes doc and counts every search word, preserving their order.
func Build(doc *source.Document, run int, searchWords []string, topWords int, sessionID string) Report {
	var text, name string
	if doc != nil {
		text = doc.Text
		name = doc.Name()
	}

	occurrences := make([]Occurrence, 0, len(searchWords))
	for _, word := range searchWords {
		occurrences = append(occurrences, Occurrence{
			Word:  word,
			Count: textstats.CountOccurrences(text, word),
		})
	}

	return Report{
		Run:         run,
		SessionID:   sessionID,
		Source:      name,
		Summary:     textstats.Analyze(text, topWords),
		Occurrences: occurrences,
	}
}
