// Package notifxmemory provides an in-memory notifx.EmailSender that records
// every message and fails on a script.
package notifxmemory

import (
	"context"
	"errors"
	"sync"

	"github.com/Abraxas-365/mailbatch/pkg/notifx"
)

// ErrScripted is the cause returned for scripted failures unless FailWith
// overrides it.
var ErrScripted = errors.New("notifxmemory: scripted failure")

// Sender records sent messages. Failed calls are counted but not recorded.
type Sender struct {
	mu        sync.Mutex
	sent      []notifx.EmailMessage
	options   []notifx.SendOptions
	calls     int
	failEvery int
	failFor   map[string]bool
	cause     error
}

// Option configures a Sender.
type Option func(*Sender)

// FailEvery makes every n-th call fail, counting from 1.
func FailEvery(n int) Option {
	return func(s *Sender) {
		s.failEvery = n
	}
}

// FailFor makes every call addressed to one of addrs fail.
func FailFor(addrs ...string) Option {
	return func(s *Sender) {
		for _, a := range addrs {
			s.failFor[a] = true
		}
	}
}

// FailWith sets the cause returned by scripted failures.
func FailWith(err error) Option {
	return func(s *Sender) {
		s.cause = err
	}
}

// New creates a Sender.
func New(opts ...Option) *Sender {
	s := &Sender{
		failFor: make(map[string]bool),
		cause:   ErrScripted,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SendEmail records msg or fails according to the script. A done context
// fails the call with the context error.
func (s *Sender) SendEmail(ctx context.Context, msg notifx.EmailMessage, opts ...notifx.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if err := ctx.Err(); err != nil {
		return notifx.SendFailed("memory", msg, err)
	}
	if s.failEvery > 0 && s.calls%s.failEvery == 0 {
		return notifx.SendFailed("memory", msg, s.cause)
	}
	if s.failFor[msg.Recipient()] {
		return notifx.SendFailed("memory", msg, s.cause)
	}

	s.sent = append(s.sent, msg)
	s.options = append(s.options, notifx.ApplyOptions(opts))
	return nil
}

// Sent returns a copy of the recorded messages in send order.
func (s *Sender) Sent() []notifx.EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]notifx.EmailMessage, len(s.sent))
	copy(out, s.sent)
	return out
}

// Options returns the send options of each recorded message.
func (s *Sender) Options() []notifx.SendOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]notifx.SendOptions, len(s.options))
	copy(out, s.options)
	return out
}

// Calls returns the number of SendEmail calls, failed ones included.
func (s *Sender) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
