package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"wordscope/internal/config"
)

const bullet = "   • "

// headingStyle colors section headings when color output is enabled.
var headingStyle = color.New(color.FgCyan, color.OpBold)

// Options controls how a Report is rendered.
type Options struct {
	Format string
	Color  bool
}

// Render writes r to w in the requested format.
func Render(w io.Writer, r Report, opts Options) error {
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", config.FormatText:
		return renderText(w, r, opts.Color)
	case config.FormatTable:
		return renderTables(w, r, opts.Color)
	case config.FormatJSON:
		return writeJSON(w, r)
	default:
		return fmt.Errorf("render report: unsupported format %q", opts.Format)
	}
}

func renderText(w io.Writer, r Report, colorize bool) error {
	s := r.Summary
	var b strings.Builder

	b.WriteString(heading("Article Statistics:", colorize))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%sTotal characters: %d\n", bullet, s.Characters)
	fmt.Fprintf(&b, "%sTotal words: %d\n", bullet, s.Words)
	fmt.Fprintf(&b, "%sParagraphs: %d\n", bullet, s.Paragraphs)
	fmt.Fprintf(&b, "%sSentences: %d\n", bullet, s.Sentences)
	b.WriteByte('\n')

	b.WriteString(heading("Word Frequency Analysis:", colorize))
	b.WriteByte('\n')
	for _, occ := range r.Occurrences {
		fmt.Fprintf(&b, "%s'%s': %d occurrences\n", bullet, occ.Word, occ.Count)
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "%s '%s'\n\n", heading("Most Common Word:", colorize), MostCommonLabel(s.MostCommonWord, s.HasMostCommon))

	if len(s.TopWords) > 0 {
		b.WriteString(heading("Top Words:", colorize))
		b.WriteByte('\n')
		for i, wc := range s.TopWords {
			fmt.Fprintf(&b, "   %d. '%s' (%d)\n", i+1, wc.Word, wc.Count)
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%s %s characters\n\n", heading("Average Word Length:", colorize), FormatDecimal(s.AverageWordLength))

	_, err := io.WriteString(w, b.String())
	return err
}

func heading(text string, colorize bool) string {
	if !colorize {
		return text
	}
	return headingStyle.Sprint(text)
}

// MostCommonLabel returns the word, or "None" when the text had no words.
func MostCommonLabel(word string, ok bool) string {
	if !ok {
		return "None"
	}
	return word
}

// FormatDecimal prints v with the fewest digits that round-trip, always
// keeping at least one decimal place (4 -> "4.0", 4.57 -> "4.57").
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
