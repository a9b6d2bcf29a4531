package errx

// Process exit codes used by the command line.
const (
	ExitOK        = 0
	ExitFatal     = 1
	ExitPartial   = 2
	ExitCancelled = 3
)

// ExitCode maps an error to a process exit code. A nil error is ExitOK and a
// cancelled operation is ExitCancelled; everything else is fatal. Partial
// batch failure is not an error and is decided by the caller.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if TypeOf(err) == TypeCancelled {
		return ExitCancelled
	}
	return ExitFatal
}
