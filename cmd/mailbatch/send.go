package main

import (
	"os"
	"time"

	"github.com/Abraxas-365/mailbatch/pkg/config"
	"github.com/Abraxas-365/mailbatch/pkg/dispatch"
	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/Abraxas-365/mailbatch/pkg/logx"
	"github.com/Abraxas-365/mailbatch/pkg/operator"
	"github.com/spf13/cobra"
)

type sendOptions struct {
	source   sourceFlags
	yes      bool
	dryRun   bool
	delay    time.Duration
	provider string
	showBody bool
}

func newSendCommand(root *rootOptions) *cobra.Command {
	opts := &sendOptions{}

	cmd := &cobra.Command{
		Use:   "send [roster]",
		Short: "Send the notice to every recipient of the roster",
		Long: `Send reads the roster (a local path or s3://bucket/key), lists the
recipients and asks for confirmation before sending. Messages go out one at a
time with a pause between them.

Exit status is 0 when every recipient was sent, 2 when some were not, 3 when
the confirmation was declined and 1 on any other error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, cfg, args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSend(cmd, cfg, opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "send without asking for confirmation")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "log messages instead of sending them")
	cmd.Flags().DurationVar(&opts.delay, "delay", dispatch.DefaultDelay, "pause between two sends")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "mail provider: console, smtp or ses")
	cmd.Flags().BoolVar(&opts.showBody, "show-body", false, "with --dry-run, log every rendered body")

	return cmd
}

func (o *sendOptions) apply(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if err := o.source.apply(cmd, cfg, args); err != nil {
		return err
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.Dispatch.DryRun = o.dryRun
	}
	if cmd.Flags().Changed("delay") {
		cfg.Dispatch.Delay = o.delay
		cfg.Dispatch.Rate = 0
	}
	if cmd.Flags().Changed("provider") {
		cfg.Mail.Provider = o.provider
	}
	return nil
}

func runSend(cmd *cobra.Command, cfg *config.Config, opts *sendOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	b, err := prepare(ctx, c)
	if err != nil {
		return err
	}

	operator.WriteListing(out, b.jobs)

	var confirmer dispatch.Confirmer = operator.NewTerminalConfirmer(os.Stdin, out)
	if opts.yes {
		confirmer = operator.NewAutoConfirmer(out)
	}
	if err := dispatch.Confirm(ctx, confirmer, len(b.jobs)); err != nil {
		return err
	}

	if err := c.initMail(ctx, opts.showBody); err != nil {
		return err
	}

	d := dispatch.NewDispatcher(
		dispatch.WithPacer(c.Pacer()),
		dispatch.WithReporter(operator.NewLogReporter(c.Logger, logx.Fields{"run_id": c.RunID})),
	)
	result := d.Run(ctx, b.jobs, c.Transport())

	summary := operator.Summary{
		Result:     result,
		Rejections: b.rejections,
		RowErrors:  b.rowErrors,
	}
	operator.WriteSummary(out, summary)

	if !summary.Clean() {
		return exitStatus(errx.ExitPartial)
	}
	return nil
}
