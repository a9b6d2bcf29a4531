package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/mailbatch/pkg/dispatch"
	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/Abraxas-365/mailbatch/pkg/logx"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return errx.ExitOK
	}

	var status exitStatus
	if errors.As(err, &status) {
		return int(status)
	}

	if errx.Is(err, dispatch.ErrConfirmationDeclined) {
		logx.Warn("sending cancelled")
	} else {
		logx.WithError(err).Error("mailbatch failed")
	}
	return errx.ExitCode(err)
}

type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mailbatch",
		Short: "Send a localized notice to every recipient of a spreadsheet",
		Long: `mailbatch reads recipients from an XLSX or CSV roster, renders a notice in
each recipient's language and sends the messages one at a time. Failed sends
are reported at the end and never retried.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./mailbatch.yaml if present)")

	cmd.AddCommand(
		newSendCommand(opts),
		newPreviewCommand(opts),
		newVersionCommand(),
	)
	return cmd
}
