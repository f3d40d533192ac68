package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wordscope/internal/config"
	"wordscope/internal/logging"
	"wordscope/internal/report"
	"wordscope/internal/source"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a file once and print the report without prompting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.Input.Path
			if len(args) == 1 {
				if path, err = config.ExpandPath(args[0]); err != nil {
					return fmt.Errorf("resolve file: %w", err)
				}
			}

			loadCtx := cmd.Context()
			if timeout := cfg.LockTimeout(); timeout > 0 {
				var cancel context.CancelFunc
				loadCtx, cancel = context.WithTimeout(loadCtx, timeout)
				defer cancel()
			}
			doc, err := source.Load(loadCtx, path)
			if err != nil {
				return fmt.Errorf("load document: %w", err)
			}

			sessionID := uuid.NewString()
			logger := logging.WithSessionID(logging.NewComponentLogger(ctx.loggerValue(), "analyze"), sessionID)
			out := cmd.OutOrStdout()
			colorize := colorEnabled(cfg.Output.Color, out)
			logger.Info("analyzing document",
				logging.String(logging.FieldPath, doc.Path),
				logging.String("format", cfg.Output.Format),
				logging.Bool("color", colorize),
			)

			r := report.Build(doc, 1, cfg.Analysis.SearchWords, cfg.Analysis.TopWords, sessionID)
			return report.Render(out, r, report.Options{
				Format: cfg.Output.Format,
				Color:  colorize,
			})
		},
	}
}
