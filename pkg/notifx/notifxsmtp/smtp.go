package notifxsmtp

import (
	"context"
	"sync"

	"github.com/Abraxas-365/mailbatch/pkg/notifx"
	"gopkg.in/gomail.v2"
)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Dialer opens an SMTP session. *gomail.Dialer satisfies it.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

// SMTPProvider implements notifx.EmailSender over one reusable SMTP session.
// The session is opened on first use and reopened after a failed send.
type SMTPProvider struct {
	dialer      Dialer
	fromAddress string

	mu      sync.Mutex
	session gomail.SendCloser
}

// NewSMTPProvider creates a provider dialing cfg.
func NewSMTPProvider(cfg Config, fromAddress string) *SMTPProvider {
	return NewSMTPProviderWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), fromAddress)
}

// NewSMTPProviderWithDialer creates a provider over a custom dialer.
func NewSMTPProviderWithDialer(d Dialer, fromAddress string) *SMTPProvider {
	return &SMTPProvider{dialer: d, fromAddress: fromAddress}
}

// SendEmail sends msg on the open session, dialing first if needed.
func (p *SMTPProvider) SendEmail(ctx context.Context, msg notifx.EmailMessage, _ ...notifx.Option) error {
	if err := ctx.Err(); err != nil {
		return smtpErrors.NewWithCause(ErrSendFailed, err).WithDetail("to", msg.Recipient())
	}

	m, err := p.BuildMessage(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		s, err := p.dialer.Dial()
		if err != nil {
			return smtpErrors.NewWithCause(ErrDialFailed, err).WithDetail("to", msg.Recipient())
		}
		p.session = s
	}

	if err := gomail.Send(p.session, m); err != nil {
		// The server may have dropped us; start clean on the next send.
		p.session.Close()
		p.session = nil
		return smtpErrors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", msg.Recipient()).
			WithDetail("subject", msg.Subject)
	}
	return nil
}

// BuildMessage converts msg to a MIME message. The text body is the primary
// part; an HTML body becomes an alternative.
func (p *SMTPProvider) BuildMessage(msg notifx.EmailMessage) (*gomail.Message, error) {
	from := msg.From
	if from == "" {
		from = p.fromAddress
	}
	if from == "" {
		return nil, smtpErrors.New(ErrBuildMessage).WithDetail("reason", "no sender address")
	}
	if msg.TextBody == "" && msg.HTMLBody == "" {
		return nil, smtpErrors.New(ErrBuildMessage).
			WithDetail("reason", "empty body").
			WithDetail("to", msg.Recipient())
	}

	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	if len(msg.CC) > 0 {
		m.SetHeader("Cc", msg.CC...)
	}
	if len(msg.BCC) > 0 {
		m.SetHeader("Bcc", msg.BCC...)
	}
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.TextBody != "":
		m.SetBody("text/plain", msg.TextBody)
	default:
		m.SetBody("text/html", msg.HTMLBody)
	}
	return m, nil
}

// Close ends the open session, if any.
func (p *SMTPProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return nil
	}
	err := p.session.Close()
	p.session = nil
	return err
}
