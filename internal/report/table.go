package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one table column: its header and how cells align.
type column struct {
	title string
	align text.Align
}

func left(title string) column  { return column{title: title, align: text.AlignLeft} }
func right(title string) column { return column{title: title, align: text.AlignRight} }

func renderTables(w io.Writer, r Report, colorize bool) error {
	s := r.Summary
	var b strings.Builder

	b.WriteString(heading("Article Statistics", colorize))
	b.WriteByte('\n')
	b.WriteString(renderTable(
		[]column{left("Metric"), right("Value")},
		[][]string{
			{"Total characters", strconv.Itoa(s.Characters)},
			{"Total words", strconv.Itoa(s.Words)},
			{"Paragraphs", strconv.Itoa(s.Paragraphs)},
			{"Sentences", strconv.Itoa(s.Sentences)},
			{"Most common word", MostCommonLabel(s.MostCommonWord, s.HasMostCommon)},
			{"Average word length", FormatDecimal(s.AverageWordLength)},
			{"Median word length", FormatDecimal(s.WordLengths.Median)},
			{"Longest word", strconv.Itoa(s.WordLengths.Longest)},
		},
	))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(r.Occurrences))
	for _, occ := range r.Occurrences {
		rows = append(rows, []string{occ.Word, strconv.Itoa(occ.Count)})
	}
	b.WriteString(heading("Word Frequency Analysis", colorize))
	b.WriteByte('\n')
	b.WriteString(renderTable([]column{left("Word"), right("Occurrences")}, rows))
	b.WriteString("\n\n")

	if len(s.TopWords) > 0 {
		rows = rows[:0]
		for i, wc := range s.TopWords {
			rows = append(rows, []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)})
		}
		b.WriteString(heading("Top Words", colorize))
		b.WriteByte('\n')
		b.WriteString(renderTable([]column{right("#"), left("Word"), right("Count")}, rows))
		b.WriteString("\n\n")
	}

	_, err := fmt.Fprint(w, b.String())
	return err
}

// renderTable draws rows under the given columns with rounded borders. Headers
// keep their case. Short rows are padded with empty cells and extra cells are
// dropped.
func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, 0, len(columns))
	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, col := range columns {
		header = append(header, col.title)
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       col.align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, cells := range rows {
		row := make(table.Row, len(columns))
		for i := range row {
			row[i] = ""
			if i < len(cells) {
				row[i] = cells[i]
			}
		}
		tw.AppendRow(row)
	}

	return tw.Render()
}
