package notifxses

import (
	"context"
	"sort"

	"github.com/Abraxas-365/mailbatch/pkg/notifx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SendEmailAPI is the part of *ses.Client the provider needs.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESProvider implements notifx.EmailSender using AWS SES.
type SESProvider struct {
	client      SendEmailAPI
	fromAddress string
}

// NewSESProvider creates a new SES email provider.
func NewSESProvider(client SendEmailAPI, fromAddress string) *SESProvider {
	return &SESProvider{
		client:      client,
		fromAddress: fromAddress,
	}
}

// SendEmail sends a single email via SES. Send options map to the SES
// configuration set and message tags.
func (p *SESProvider) SendEmail(ctx context.Context, msg notifx.EmailMessage, opts ...notifx.Option) error {
	input, err := p.buildInput(msg, notifx.ApplyOptions(opts))
	if err != nil {
		return err
	}

	if _, err := p.client.SendEmail(ctx, input); err != nil {
		return sesErrors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", msg.Recipient()).
			WithDetail("subject", msg.Subject)
	}
	return nil
}

func (p *SESProvider) buildInput(msg notifx.EmailMessage, so notifx.SendOptions) (*ses.SendEmailInput, error) {
	from := msg.From
	if from == "" {
		from = p.fromAddress
	}
	if from == "" {
		return nil, sesErrors.New(ErrBuildMessage).WithDetail("reason", "no sender address")
	}
	if msg.TextBody == "" && msg.HTMLBody == "" {
		return nil, sesErrors.New(ErrBuildMessage).
			WithDetail("reason", "empty body").
			WithDetail("to", msg.Recipient())
	}

	body := &types.Body{}
	if msg.TextBody != "" {
		body.Text = utf8Content(msg.TextBody)
	}
	if msg.HTMLBody != "" {
		body.Html = utf8Content(msg.HTMLBody)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(from),
		Destination: &types.Destination{
			ToAddresses:  msg.To,
			CcAddresses:  msg.CC,
			BccAddresses: msg.BCC,
		},
		Message: &types.Message{
			Subject: utf8Content(msg.Subject),
			Body:    body,
		},
	}

	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	if so.ConfigID != "" {
		input.ConfigurationSetName = aws.String(so.ConfigID)
	}
	if len(so.Tags) > 0 {
		names := make([]string, 0, len(so.Tags))
		for k := range so.Tags {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			input.Tags = append(input.Tags, types.MessageTag{
				Name:  aws.String(k),
				Value: aws.String(so.Tags[k]),
			})
		}
	}

	return input, nil
}

func utf8Content(s string) *types.Content {
	return &types.Content{
		Data:    aws.String(s),
		Charset: aws.String("UTF-8"),
	}
}
