package operator

import (
	"fmt"

	"github.com/Abraxas-365/mailbatch/pkg/dispatch"
	"github.com/Abraxas-365/mailbatch/pkg/logx"
)

// LogReporter writes one log line per job and one when the batch ends.
type LogReporter struct {
	logger *logx.Logger
	fields logx.Fields
}

// NewLogReporter creates a reporter. A nil logger means the default logger;
// fields are attached to every line.
func NewLogReporter(logger *logx.Logger, fields logx.Fields) *LogReporter {
	if logger == nil {
		logger = logx.GetDefaultLogger()
	}
	return &LogReporter{logger: logger, fields: fields}
}

func (r *LogReporter) Sent(job dispatch.Job, pos, n int) {
	r.logger.WithFields(r.fields).WithFields(logx.Fields{
		"to":       job.Address,
		"progress": progress(pos, n),
	}).Info("email sent")
}

func (r *LogReporter) Failed(job dispatch.Job, err error, pos, n int) {
	r.logger.WithFields(r.fields).WithFields(logx.Fields{
		"to":       job.Address,
		"progress": progress(pos, n),
	}).WithError(err).Error("email failed")
}

func (r *LogReporter) Completed(result dispatch.Result) {
	entry := r.logger.WithFields(r.fields).WithFields(logx.Fields{
		"attempted": result.Attempted,
		"succeeded": result.Succeeded,
		"failed":    result.Failed(),
	})
	if result.AllSucceeded() {
		entry.Info("batch completed")
		return
	}
	entry.Warn("batch completed with failures")
}

func progress(pos, n int) string {
	return fmt.Sprintf("%d/%d", pos, n)
}
