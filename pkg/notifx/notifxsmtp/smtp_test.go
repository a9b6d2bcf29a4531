package notifxsmtp_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/Abraxas-365/mailbatch/pkg/notifx"
	"github.com/Abraxas-365/mailbatch/pkg/notifx/notifxsmtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSession struct {
	from   []string
	to     [][]string
	raw    []string
	failOn int
	calls  int
	closed int
}

func (s *fakeSession) Send(from string, to []string, msg io.WriterTo) error {
	s.calls++
	if s.failOn == s.calls {
		return errors.New("421 service not available")
	}
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return err
	}
	s.from = append(s.from, from)
	s.to = append(s.to, to)
	s.raw = append(s.raw, buf.String())
	return nil
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeDialer struct {
	session *fakeSession
	dials   int
	err     error
}

func (d *fakeDialer) Dial() (gomail.SendCloser, error) {
	d.dials++
	if d.err != nil {
		return nil, d.err
	}
	return d.session, nil
}

func plainMessage(to string) notifx.EmailMessage {
	return notifx.EmailMessage{To: []string{to}, Subject: "Notice", TextBody: "Dear Anna,"}
}

func TestSMTPProvider_ReusesSession(t *testing.T) {
	session := &fakeSession{}
	dialer := &fakeDialer{session: session}
	p := notifxsmtp.NewSMTPProviderWithDialer(dialer, "noreply@example.com")
	ctx := context.Background()

	require.NoError(t, p.SendEmail(ctx, plainMessage("a@example.com")))
	require.NoError(t, p.SendEmail(ctx, plainMessage("b@example.com")))

	assert.Equal(t, 1, dialer.dials)
	assert.Equal(t, []string{"noreply@example.com", "noreply@example.com"}, session.from)
	assert.Equal(t, [][]string{{"a@example.com"}, {"b@example.com"}}, session.to)
	assert.Contains(t, session.raw[0], "Subject: Notice")
	assert.Contains(t, session.raw[0], "text/plain; charset=UTF-8")
	assert.Contains(t, session.raw[0], "Dear Anna,")

	require.NoError(t, p.Close())
	assert.Equal(t, 1, session.closed)
}

func TestSMTPProvider_RedialsAfterFailure(t *testing.T) {
	session := &fakeSession{failOn: 1}
	dialer := &fakeDialer{session: session}
	p := notifxsmtp.NewSMTPProviderWithDialer(dialer, "noreply@example.com")
	ctx := context.Background()

	err := p.SendEmail(ctx, plainMessage("a@example.com"))
	assert.True(t, errx.Is(err, notifxsmtp.ErrSendFailed))
	assert.Equal(t, 1, session.closed)

	require.NoError(t, p.SendEmail(ctx, plainMessage("b@example.com")))
	assert.Equal(t, 2, dialer.dials)
}

func TestSMTPProvider_DialFailure(t *testing.T) {
	p := notifxsmtp.NewSMTPProviderWithDialer(&fakeDialer{err: errors.New("connection refused")}, "noreply@example.com")

	err := p.SendEmail(context.Background(), plainMessage("a@example.com"))
	assert.True(t, errx.Is(err, notifxsmtp.ErrDialFailed))
}

func TestSMTPProvider_BuildMessage(t *testing.T) {
	p := notifxsmtp.NewSMTPProviderWithDialer(&fakeDialer{}, "")

	_, err := p.BuildMessage(plainMessage("a@example.com"))
	assert.True(t, errx.Is(err, notifxsmtp.ErrBuildMessage))

	m, err := p.BuildMessage(notifx.EmailMessage{
		From:     `"Ops" <ops@example.com>`,
		To:       []string{"a@example.com"},
		ReplyTo:  "help@example.com",
		Subject:  "Notice",
		TextBody: "plain",
		HTMLBody: "<p>html</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"help@example.com"}, m.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "multipart/alternative")
	assert.Contains(t, buf.String(), "<p>html</p>")
}
