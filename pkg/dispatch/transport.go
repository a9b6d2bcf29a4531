package dispatch

import (
	"context"

	"github.com/Abraxas-365/mailbatch/pkg/notifx"
)

// Transport delivers one message. A non-nil error means this message was not
// sent; the transport stays usable for the next one.
type Transport interface {
	Send(ctx context.Context, to, subject, body string) error
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, to, subject, body string) error

// Send calls f.
func (f TransportFunc) Send(ctx context.Context, to, subject, body string) error {
	return f(ctx, to, subject, body)
}

// NotifxTransport sends jobs as plain-text mail through a notifx sender.
type NotifxTransport struct {
	sender notifx.EmailSender
	from   string
	opts   []notifx.Option
}

// NewNotifxTransport creates a transport over sender. from may be empty when
// the sender supplies its own default; opts are passed on every send.
func NewNotifxTransport(sender notifx.EmailSender, from string, opts ...notifx.Option) *NotifxTransport {
	return &NotifxTransport{
		sender: sender,
		from:   from,
		opts:   opts,
	}
}

func (t *NotifxTransport) Send(ctx context.Context, to, subject, body string) error {
	return t.sender.SendEmail(ctx, notifx.EmailMessage{
		From:     t.from,
		To:       []string{to},
		Subject:  subject,
		TextBody: body,
	}, t.opts...)
}
