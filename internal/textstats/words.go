package textstats

import (
	"cmp"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/aclements/go-moremath/stats"

	"wordscope/internal/textutil"
)

// WordCount pairs a word with its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// LengthStats describes the distribution of word lengths in a text.
type LengthStats struct {
	Words    int     `json:"words"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Shortest int     `json:"shortest"`
	Longest  int     `json:"longest"`
}

// WordFrequencies counts the lowercased words of text. The result is ordered by
// first appearance, which is the order ties are broken in.
func WordFrequencies(text string) []WordCount {
	words := textutil.Words(textutil.Lower(text))
	if len(words) == 0 {
		return nil
	}
	index := make(map[string]int, len(words))
	counts := make([]WordCount, 0, len(words))
	for _, word := range words {
		if i, ok := index[word]; ok {
			counts[i].Count++
			continue
		}
		index[word] = len(counts)
		counts = append(counts, WordCount{Word: word, Count: 1})
	}
	return counts
}

// MostCommonWord returns the lowercased word that occurs most often in text.
// When several words share the highest count the one seen first wins. The
// boolean is false when text contains no words.
func MostCommonWord(text string) (string, bool) {
	best, ok := mostCommon(WordFrequencies(text))
	return best.Word, ok
}

func mostCommon(counts []WordCount) (WordCount, bool) {
	if len(counts) == 0 {
		return WordCount{}, false
	}
	best := counts[0]
	for _, wc := range counts[1:] {
		if wc.Count > best.Count {
			best = wc
		}
	}
	return best, true
}

// TopWords returns up to n of the most frequent words, highest count first,
// ties in first-seen order.
func TopWords(text string, n int) []WordCount {
	if n <= 0 {
		return nil
	}
	counts := WordFrequencies(text)
	slices.SortStableFunc(counts, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// AverageWordLength returns the mean word length of text in characters,
// rounded to two decimal places. Punctuation is not counted. Returns 0 when
// text contains no words.
func AverageWordLength(text string) float64 {
	words := textutil.Words(text)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, word := range words {
		total += utf8.RuneCountInString(word)
	}
	return roundTo2(float64(total) / float64(len(words)))
}

// WordLengthStats summarizes the word length distribution of text. The zero
// value is returned when text contains no words.
func WordLengthStats(text string) LengthStats {
	words := textutil.Words(text)
	if len(words) == 0 {
		return LengthStats{}
	}
	sample := stats.Sample{Xs: make([]float64, 0, len(words))}
	for _, word := range words {
		sample.Xs = append(sample.Xs, float64(utf8.RuneCountInString(word)))
	}
	sample.Sort()

	shortest, longest := sample.Bounds()
	out := LengthStats{
		Words:    len(words),
		Mean:     AverageWordLength(text),
		Median:   roundTo2(sample.Quantile(0.5)),
		Shortest: int(shortest),
		Longest:  int(longest),
	}
	if len(words) > 1 {
		out.StdDev = roundTo2(sample.StdDev())
	}
	return out
}

// roundTo2 rounds half to even on the exact binary value of v.
func roundTo2(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
