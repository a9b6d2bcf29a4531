package dispatch

import "github.com/Abraxas-365/mailbatch/pkg/errx"

var dispatchErrors = errx.NewRegistry("DISPATCH")

var (
	ErrTransport            = dispatchErrors.Register("TRANSPORT", errx.TypeExternal, "Mail transport failed to send")
	ErrConfirmationDeclined = dispatchErrors.Register("CONFIRMATION_DECLINED", errx.TypeCancelled, "Batch was not confirmed")
)
