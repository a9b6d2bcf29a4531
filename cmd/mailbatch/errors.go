package main

import (
	"fmt"

	"github.com/Abraxas-365/mailbatch/pkg/errx"
)

var cliErrors = errx.NewRegistry("CLI")

var (
	ErrNoSource  = cliErrors.Register("NO_SOURCE", errx.TypeValidation, "No roster given")
	ErrAWSConfig = cliErrors.Register("AWS_CONFIG", errx.TypeExternal, "Unable to load AWS configuration")
)

func errAWS(cause error) error {
	return cliErrors.NewWithCause(ErrAWSConfig, cause)
}

// exitStatus ends the process with a code without reporting an error. It
// signals a batch that ran to completion but left recipients behind.
type exitStatus int

func (s exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(s))
}
