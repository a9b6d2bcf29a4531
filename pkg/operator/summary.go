package operator

import (
	"fmt"
	"io"
	"strings"

	"github.com/Abraxas-365/mailbatch/pkg/campaign"
	"github.com/Abraxas-365/mailbatch/pkg/dispatch"
	"github.com/Abraxas-365/mailbatch/pkg/roster"
)

// perLine is how many addresses the listing prints per line.
const perLine = 4

// WriteListing prints the numbered recipient addresses, four per line,
// padded to the longest address.
func WriteListing(w io.Writer, jobs []dispatch.Job) {
	fmt.Fprintf(w, "Recipients: %d\n", len(jobs))
	if len(jobs) == 0 {
		return
	}

	width := 0
	for _, j := range jobs {
		if len(j.Address) > width {
			width = len(j.Address)
		}
	}
	numWidth := len(fmt.Sprint(len(jobs)))

	var line []string
	for i, j := range jobs {
		line = append(line, fmt.Sprintf("%*d: %-*s", numWidth, i+1, width, j.Address))
		if len(line) == perLine || i == len(jobs)-1 {
			fmt.Fprintln(w, strings.TrimRight(strings.Join(line, "  "), " "))
			line = line[:0]
		}
	}
}

// Summary is everything the end-of-run report covers.
type Summary struct {
	Result     dispatch.Result
	Rejections []campaign.Rejection
	RowErrors  []roster.RowError
}

// Clean reports whether every recipient was sent and none was skipped.
func (s Summary) Clean() bool {
	return s.Result.AllSucceeded() && len(s.Rejections) == 0 && len(s.RowErrors) == 0
}

// WriteSummary prints the end-of-run report.
func WriteSummary(w io.Writer, s Summary) {
	r := s.Result
	if r.AllSucceeded() {
		fmt.Fprintf(w, "All %d emails were sent successfully!\n", r.Attempted)
	} else {
		fmt.Fprintf(w, "%d out of %d emails sent successfully with %d errors:\n", r.Succeeded, r.Attempted, r.Failed())
		for _, addr := range r.FailedAddresses {
			fmt.Fprintf(w, "  - %s\n", addr)
		}
	}

	WriteSkipped(w, s)
}

// WriteSkipped lists the recipients that never reached the dispatcher. It
// writes nothing when there are none.
func WriteSkipped(w io.Writer, s Summary) {
	n := len(s.Rejections) + len(s.RowErrors)
	if n == 0 {
		return
	}
	fmt.Fprintf(w, "%d recipients were skipped:\n", n)
	for _, e := range s.RowErrors {
		fmt.Fprintf(w, "  - row %d: %v\n", e.Row, e.Err)
	}
	for _, rej := range s.Rejections {
		fmt.Fprintf(w, "  - row %d (%s): %v\n", rej.Row, rej.Address, rej.Err)
	}
}
