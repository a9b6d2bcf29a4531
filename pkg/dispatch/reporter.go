package dispatch

// Reporter observes a run. Positions are 1-based and n is the batch size.
// Implementations must not block for long; they run on the dispatch loop.
type Reporter interface {
	Sent(job Job, pos, n int)
	Failed(job Job, err error, pos, n int)
	Completed(result Result)
}

type nopReporter struct{}

func (nopReporter) Sent(Job, int, int)          {}
func (nopReporter) Failed(Job, error, int, int) {}
func (nopReporter) Completed(Result)            {}

// NopReporter discards all events.
var NopReporter Reporter = nopReporter{}

// Reporters fans events out to several reporters in order.
type Reporters []Reporter

func (rs Reporters) Sent(job Job, pos, n int) {
	for _, r := range rs {
		r.Sent(job, pos, n)
	}
}

func (rs Reporters) Failed(job Job, err error, pos, n int) {
	for _, r := range rs {
		r.Failed(job, err, pos, n)
	}
}

func (rs Reporters) Completed(result Result) {
	for _, r := range rs {
		r.Completed(result)
	}
}
