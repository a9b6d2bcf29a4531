package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(&Config{
		Level:           LevelInfo,
		Format:          format,
		EnableTimestamp: true,
		TimeFormat:      time.DateTime,
		Output:          &buf,
	})
	l.now = func() time.Time { return time.Date(2024, 3, 8, 9, 30, 0, 0, time.UTC) }
	return l, &buf
}

func TestConsoleFormatter_SortsFields(t *testing.T) {
	l, buf := newTestLogger(FormatConsole)

	l.WithFields(Fields{"to": "a@example.com", "index": 2, "batch": "x"}).Info("email sent")

	assert.Equal(t, "2024-03-08 09:30:00 [INFO ] email sent batch=x index=2 to=a@example.com\n", buf.String())
}

func TestConsoleFormatter_ErrorOnOwnLine(t *testing.T) {
	l, buf := newTestLogger(FormatConsole)

	l.WithField("to", "b@example.com").WithError(errors.New("mailbox unavailable")).Error("send failed")

	assert.Equal(t,
		"2024-03-08 09:30:00 [ERROR] send failed to=b@example.com\n  error: mailbox unavailable\n",
		buf.String())
}

func TestJSONFormatter(t *testing.T) {
	l, buf := newTestLogger(FormatJSON)

	l.WithField("to", "c@example.com").Info("email sent")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "INFO", got["level"])
	assert.Equal(t, "email sent", got["msg"])
	assert.Equal(t, "c@example.com", got["to"])
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(FormatConsole)
	l.SetLevel(LevelWarn)

	l.Info("hidden")
	l.WithField("k", "v").Debug("hidden")
	assert.Empty(t, buf.String())

	l.WithField("k", "v").Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestEntry_WithFieldDoesNotMutateParent(t *testing.T) {
	l, buf := newTestLogger(FormatConsole)

	base := l.WithField("run", "r1")
	base.WithField("to", "a@example.com").Info("first")
	buf.Reset()
	base.Info("second")

	assert.NotContains(t, buf.String(), "to=")
}

func TestFatalUsesExitFunc(t *testing.T) {
	l, _ := newTestLogger(FormatConsole)
	code := -1
	l.SetExitFunc(func(c int) { code = c })

	l.WithField("k", "v").Fatal("bye")
	assert.Equal(t, 1, code)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, LevelOff, ParseLevel("off"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
	assert.Equal(t, "ERROR", LevelError.String())
}
