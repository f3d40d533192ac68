package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "wordscope",
		Short:         "Interactive text statistics for a news article",
		Long:          "wordscope loads a text file and reports character, word, paragraph and sentence counts,\nsearch word occurrences, the most common word, and the average word length.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVarP(&flags.file, "file", "f", "", "Text file to analyze (default README.md)")
	pf.StringSliceVarP(&flags.words, "words", "w", nil, "Comma-separated search words")
	pf.StringVar(&flags.format, "format", "", "Report format: text, table, or json")
	pf.StringVar(&flags.color, "color", "", "Color output: auto, always, or never")
	pf.IntVar(&flags.top, "top", -1, "List the N most frequent words (0 hides the list)")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
