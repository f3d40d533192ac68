package textstats

// Summary holds every statistic computed for one text.
type Summary struct {
	Characters        int         `json:"characters"`
	Words             int         `json:"words"`
	Paragraphs        int         `json:"paragraphs"`
	Sentences         int         `json:"sentences"`
	MostCommonWord    string      `json:"most_common_word,omitempty"`
	MostCommonCount   int         `json:"most_common_count"`
	HasMostCommon     bool        `json:"has_most_common"`
	AverageWordLength float64     `json:"average_word_length"`
	WordLengths       LengthStats `json:"word_lengths"`
	TopWords          []WordCount `json:"top_words,omitempty"`
}

// Analyze computes a Summary for text. topN controls how many of the most
// frequent words are included; zero or less omits them.
func Analyze(text string, topN int) Summary {
	counts := WordFrequencies(text)
	best, ok := mostCommon(counts)

	summary := Summary{
		Characters:        CountCharacters(text),
		Words:             CountWords(text),
		Paragraphs:        CountParagraphs(text),
		Sentences:         CountSentences(text),
		MostCommonWord:    best.Word,
		MostCommonCount:   best.Count,
		HasMostCommon:     ok,
		AverageWordLength: AverageWordLength(text),
		WordLengths:       WordLengthStats(text),
	}
	if topN > 0 {
		summary.TopWords = TopWords(text, topN)
	}
	return summary
}
