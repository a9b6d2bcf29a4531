package notifx

import (
	"context"
	"strings"
)

// EmailSender sends a single email.
type EmailSender interface {
	SendEmail(ctx context.Context, msg EmailMessage, opts ...Option) error
}

// Client is the main entry point for sending notifications. It validates
// messages, fills in the default sender and forwards to a provider.
type Client struct {
	provider EmailSender
	from     string
	defaults []Option
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultFrom sets the From used for messages that carry none.
func WithDefaultFrom(from string) ClientOption {
	return func(c *Client) {
		c.from = from
	}
}

// WithDefaultOptions adds send options applied before per-call options.
func WithDefaultOptions(opts ...Option) ClientOption {
	return func(c *Client) {
		c.defaults = append(c.defaults, opts...)
	}
}

// NewClient creates a new notification client.
func NewClient(provider EmailSender, opts ...ClientOption) *Client {
	c := &Client{provider: provider}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SendEmail sends an email through the configured provider.
func (c *Client) SendEmail(ctx context.Context, msg EmailMessage, opts ...Option) error {
	if c.provider == nil {
		return notifxErrors.New(ErrNoProvider)
	}
	if err := Validate(msg); err != nil {
		return err
	}
	if msg.From == "" {
		msg.From = c.from
	}

	all := make([]Option, 0, len(c.defaults)+len(opts))
	all = append(all, c.defaults...)
	all = append(all, opts...)
	return c.provider.SendEmail(ctx, msg, all...)
}

// Validate checks that msg has at least one non-blank recipient and a subject.
func Validate(msg EmailMessage) error {
	if len(msg.To) == 0 {
		return notifxErrors.New(ErrInvalidMessage).WithDetail("reason", "no recipients")
	}
	for _, to := range msg.To {
		if strings.TrimSpace(to) == "" {
			return notifxErrors.New(ErrInvalidMessage).WithDetail("reason", "blank recipient")
		}
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return notifxErrors.New(ErrInvalidMessage).
			WithDetail("reason", "empty subject").
			WithDetail("to", msg.Recipient())
	}
	return nil
}

// SendFailed wraps a provider error as NOTIFX_SEND_FAILED.
func SendFailed(provider string, msg EmailMessage, cause error) error {
	return notifxErrors.NewWithCause(ErrSendFailed, cause).
		WithDetail("provider", provider).
		WithDetail("to", msg.Recipient())
}
