package main

import (
	"github.com/spf13/cobra"

	"wordscope/internal/logging"
	"wordscope/internal/session"
)

func runInteractive(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := session.New(session.Options{
		Path:        cfg.Input.Path,
		SearchWords: cfg.Analysis.SearchWords,
		TopWords:    cfg.Analysis.TopWords,
		Format:      cfg.Output.Format,
		Color:       colorEnabled(cfg.Output.Color, out),
		LockTimeout: cfg.LockTimeout(),
		In:          cmd.InOrStdin(),
		Out:         out,
		Logger:      ctx.loggerValue(),
	})
	runs, err := s.Run(cmd.Context())
	logging.NewComponentLogger(ctx.loggerValue(), "cli").Debug("interactive session ended",
		logging.String(logging.FieldSessionID, s.ID()),
		logging.Int("runs", runs),
		logging.Bool("halted", err != nil),
	)
	return err
}
