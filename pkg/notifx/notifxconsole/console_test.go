package notifxconsole_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/Abraxas-365/mailbatch/pkg/logx"
	"github.com/Abraxas-365/mailbatch/pkg/notifx"
	"github.com/Abraxas-365/mailbatch/pkg/notifx/notifxconsole"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *logx.Logger {
	return logx.NewLogger(&logx.Config{Level: logx.LevelInfo, Format: logx.FormatConsole, Output: buf})
}

func TestConsoleProvider_LogsInsteadOfSending(t *testing.T) {
	var buf bytes.Buffer
	p := notifxconsole.NewConsoleProvider(notifxconsole.WithLogger(newLogger(&buf)))

	err := p.SendEmail(context.Background(), notifx.EmailMessage{
		From:     "ops@example.com",
		To:       []string{"a@example.com"},
		Subject:  "Notice",
		TextBody: "hidden at info",
	}, notifx.WithTags(map[string]string{"run_id": "r-1"}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "to=a@example.com")
	assert.Contains(t, out, "run_id=r-1")
	assert.NotContains(t, out, "hidden at info")
}

func TestConsoleProvider_WithBody(t *testing.T) {
	var buf bytes.Buffer
	p := notifxconsole.NewConsoleProvider(notifxconsole.WithLogger(newLogger(&buf)), notifxconsole.WithBody())

	err := p.SendEmail(context.Background(), notifx.EmailMessage{
		To: []string{"a@example.com"}, Subject: "Notice", TextBody: "Dear Anna,",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Dear Anna,")
}

func TestConsoleProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifxconsole.NewConsoleProvider().SendEmail(ctx, notifx.EmailMessage{To: []string{"a@example.com"}})
	assert.True(t, errx.Is(err, notifx.ErrSendFailed))
	assert.ErrorIs(t, err, context.Canceled)
}
