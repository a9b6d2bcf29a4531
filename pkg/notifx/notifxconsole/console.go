package notifxconsole

import (
	"context"
	"strings"

	"github.com/Abraxas-365/mailbatch/pkg/logx"
	"github.com/Abraxas-365/mailbatch/pkg/notifx"
)

// ConsoleProvider prints emails via logx instead of delivering them. It backs
// dry runs.
type ConsoleProvider struct {
	logger    *logx.Logger
	printBody  bool
}

// Option configures a ConsoleProvider.
type Option func(*ConsoleProvider)

// WithLogger directs output to l instead of the default logger.
func WithLogger(l *logx.Logger) Option {
	return func(p *ConsoleProvider) {
		p.logger = l
	}
}

// WithBody logs the text body at info level rather than debug.
func WithBody() Option {
	return func(p *ConsoleProvider) {
		p.printBody = true
	}
}

// NewConsoleProvider creates a new console email provider.
func NewConsoleProvider(opts ...Option) *ConsoleProvider {
	p := &ConsoleProvider{}
	for _, o := range opts {
		o(p)
	}
	return p
}

// SendEmail logs the email details instead of sending it. It honours ctx so
// a dry run behaves like a real provider under cancellation.
func (p *ConsoleProvider) SendEmail(ctx context.Context, msg notifx.EmailMessage, opts ...notifx.Option) error {
	if err := ctx.Err(); err != nil {
		return notifx.SendFailed("console", msg, err)
	}

	logger := p.logger
	if logger == nil {
		logger = logx.GetDefaultLogger()
	}

	fields := logx.Fields{
		"from":    msg.From,
		"to":      strings.Join(msg.To, ", "),
		"subject": msg.Subject,
	}
	if so := notifx.ApplyOptions(opts); so.Tags["run_id"] != "" {
		fields["run_id"] = so.Tags["run_id"]
	}
	entry := logger.WithFields(fields)
	entry.Info("notifx/console: email not delivered (dry run)")

	if msg.TextBody == "" {
		return nil
	}
	if p.printBody {
		entry.Infof("notifx/console: text body:\n%s", msg.TextBody)
	} else {
		entry.Debugf("notifx/console: text body:\n%s", msg.TextBody)
	}
	return nil
}
