package dispatch

import (
	"time"

	"github.com/Abraxas-365/mailbatch/pkg/asyncx"
)

// DefaultDelay is the pause between two sends when no pacer is configured.
const DefaultDelay = 5 * time.Second

// Options configures a Dispatcher.
type Options struct {
	Pacer    asyncx.Pacer
	Reporter Reporter
}

func defaultOptions() Options {
	return Options{
		Pacer:    asyncx.FixedDelay(DefaultDelay),
		Reporter: NopReporter,
	}
}

// Option is a functional option for configuring a Dispatcher.
type Option func(*Options)

// WithPacer sets the policy applied between sends. A nil pacer disables
// waiting.
func WithPacer(p asyncx.Pacer) Option {
	return func(o *Options) {
		if p == nil {
			p = asyncx.NoDelay
		}
		o.Pacer = p
	}
}

// WithDelay is shorthand for WithPacer(asyncx.FixedDelay(d)).
func WithDelay(d time.Duration) Option {
	return WithPacer(asyncx.FixedDelay(d))
}

// WithReporter sets the progress observer.
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		if r == nil {
			r = NopReporter
		}
		o.Reporter = r
	}
}
