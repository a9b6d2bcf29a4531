package main

import (
	"context"

	"github.com/Abraxas-365/mailbatch/pkg/campaign"
	"github.com/Abraxas-365/mailbatch/pkg/config"
	"github.com/Abraxas-365/mailbatch/pkg/dispatch"
	"github.com/Abraxas-365/mailbatch/pkg/logx"
	"github.com/Abraxas-365/mailbatch/pkg/roster"
	"github.com/spf13/cobra"
)

// sourceFlags are shared by send and preview.
type sourceFlags struct {
	sheet  string
	tables string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "XLSX worksheet to read (default: active sheet)")
	cmd.Flags().StringVar(&f.tables, "tables", "", "YAML localization tables replacing the built-in notice")
}

// apply overlays command-line values on cfg.
func (f *sourceFlags) apply(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		cfg.Source.Path = args[0]
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Source.Sheet = f.sheet
	}
	if cmd.Flags().Changed("tables") {
		cfg.Campaign.TablesPath = f.tables
	}
	if cfg.Source.Path == "" {
		return cliErrors.New(ErrNoSource).WithDetail("hint", "pass a roster path or set source.path")
	}
	return nil
}

// batch is a generated, not yet sent, set of jobs.
type batch struct {
	jobs       []dispatch.Job
	rejections []campaign.Rejection
	rowErrors  []roster.RowError
}

// prepare reads the roster and renders every job.
func prepare(ctx context.Context, c *Container) (*batch, error) {
	reader, key, err := c.Roster(ctx)
	if err != nil {
		return nil, err
	}

	list, err := reader.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	for _, re := range list.RowErrors {
		c.Logger.WithField("row", re.Row).WithError(re.Err).Warn("row skipped")
	}

	jobs, rejections := c.Generator.GenerateAll(list.Recipients)
	for _, rej := range rejections {
		c.Logger.WithFields(logx.Fields{
			"row": rej.Row,
			"to":  rej.Address,
		}).WithError(rej.Err).Warn("recipient rejected")
	}

	c.Logger.WithFields(logx.Fields{
		"source":   c.Config.Source.Path,
		"rows":     len(list.Recipients) + len(list.RowErrors),
		"jobs":     len(jobs),
		"rejected": len(rejections) + len(list.RowErrors),
	}).Info("roster loaded")

	return &batch{jobs: jobs, rejections: rejections, rowErrors: list.RowErrors}, nil
}
