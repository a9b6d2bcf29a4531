package dispatch

import (
	"context"
	"sync"

	"github.com/Abraxas-365/mailbatch/pkg/logx"
)

// Dispatcher sends a batch of jobs one at a time and accounts for every
// outcome. A failed send is recorded and the batch moves on; nothing is
// retried.
type Dispatcher struct {
	opts Options

	run   sync.Mutex
	mu    sync.RWMutex
	state BatchState
}

// NewDispatcher creates a dispatcher. Without options it waits DefaultDelay
// between sends and reports nothing.
func NewDispatcher(options ...Option) *Dispatcher {
	opts := defaultOptions()
	for _, o := range options {
		o(&opts)
	}
	return &Dispatcher{
		opts:  opts,
		state: BatchStateNotStarted,
	}
}

// State returns the batch state of the current or last run.
func (d *Dispatcher) State() BatchState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *Dispatcher) setState(s BatchState) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}

// Run sends jobs through t in input order, each exactly once. The pacer is
// consulted between consecutive sends but not after the last one.
//
// A cancelled ctx does not stop the loop: the pacer returns early and each
// remaining job is still attempted, failing through the transport. Concurrent
// calls to Run are serialized.
func (d *Dispatcher) Run(ctx context.Context, jobs []Job, t Transport) Result {
	d.run.Lock()
	defer d.run.Unlock()

	n := len(jobs)
	result := newResult(n)

	d.setState(BatchStateRunning)
	logx.WithField("jobs", n).Debug("dispatch: batch started")

	for i, job := range jobs {
		if i > 0 {
			if err := d.opts.Pacer.Wait(ctx); err != nil {
				logx.WithError(err).Debug("dispatch: pacer interrupted")
			}
		}

		result.Attempted++
		if err := t.Send(ctx, job.Address, job.Subject, job.Body); err != nil {
			result.FailedAddresses = append(result.FailedAddresses, job.Address)
			result.States[i] = JobStateFailed
			d.opts.Reporter.Failed(job, transportError(job, i+1, err), i+1, n)
			continue
		}

		result.Succeeded++
		result.States[i] = JobStateSent
		d.opts.Reporter.Sent(job, i+1, n)
	}

	d.setState(BatchStateCompleted)
	logx.WithFields(logx.Fields{
		"attempted": result.Attempted,
		"succeeded": result.Succeeded,
		"failed":    result.Failed(),
	}).Debug("dispatch: batch completed")

	d.opts.Reporter.Completed(result)
	return result
}

func transportError(job Job, pos int, cause error) error {
	return dispatchErrors.NewWithCause(ErrTransport, cause).
		WithDetail("to", job.Address).
		WithDetail("position", pos)
}
