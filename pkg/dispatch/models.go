package dispatch

// Job is one fully rendered message. It is built once and never modified.
type Job struct {
	Address string `json:"address"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// JobState is the lifecycle state of a single job within a run.
type JobState string

const (
	JobStatePending JobState = "pending"
	JobStateSent    JobState = "sent"
	JobStateFailed  JobState = "failed"
)

// BatchState is the lifecycle state of a Dispatcher.
type BatchState string

const (
	BatchStateNotStarted BatchState = "not_started"
	BatchStateRunning    BatchState = "running"
	BatchStateCompleted  BatchState = "completed"
)

// Result aggregates the outcome of a run.
//
// After every processed job Succeeded+len(FailedAddresses) == Attempted, and
// when Run returns Attempted equals the number of jobs given to it.
type Result struct {
	Attempted       int        `json:"attempted"`
	Succeeded       int        `json:"succeeded"`
	FailedAddresses []string   `json:"failed_addresses"`
	States          []JobState `json:"states"`
}

func newResult(n int) Result {
	states := make([]JobState, n)
	for i := range states {
		states[i] = JobStatePending
	}
	return Result{
		FailedAddresses: []string{},
		States:          states,
	}
}

// Failed returns the number of failed jobs.
func (r Result) Failed() int {
	return len(r.FailedAddresses)
}

// AllSucceeded reports whether every attempted job was sent.
func (r Result) AllSucceeded() bool {
	return len(r.FailedAddresses) == 0 && r.Succeeded == r.Attempted
}
