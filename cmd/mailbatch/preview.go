package main

import (
	"fmt"

	"github.com/Abraxas-365/mailbatch/pkg/config"
	"github.com/Abraxas-365/mailbatch/pkg/dispatch"
	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/Abraxas-365/mailbatch/pkg/operator"
	"github.com/spf13/cobra"
)

type previewOptions struct {
	source sourceFlags
	bodies bool
}

func newPreviewCommand(root *rootOptions) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [roster]",
		Short: "Render the batch without sending anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if err := opts.source.apply(cmd, cfg, args); err != nil {
				return err
			}
			return runPreview(cmd, cfg, opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().BoolVar(&opts.bodies, "bodies", false, "print every rendered subject and body")
	return cmd
}

func runPreview(cmd *cobra.Command, cfg *config.Config, opts *previewOptions) error {
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
	if opts.bodies {
		for i, job := range b.jobs {
			fmt.Fprintf(out, "\n--- %d: %s\nSubject: %s\n\n%s\n", i+1, job.Address, job.Subject, job.Body)
		}
	}

	summary := operator.Summary{
		Result:     dispatch.Result{FailedAddresses: []string{}},
		Rejections: b.rejections,
		RowErrors:  b.rowErrors,
	}
	if !summary.Clean() {
		fmt.Fprintln(out)
		operator.WriteSkipped(out, summary)
		return exitStatus(errx.ExitPartial)
	}
	return nil
}
