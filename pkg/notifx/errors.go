package notifx

import "github.com/Abraxas-365/mailbatch/pkg/errx"

var notifxErrors = errx.NewRegistry("NOTIFX")

var (
	ErrSendFailed     = notifxErrors.Register("SEND_FAILED", errx.TypeExternal, "Failed to send email")
	ErrInvalidMessage = notifxErrors.Register("INVALID_MESSAGE", errx.TypeValidation, "Invalid email message")
	ErrNoProvider     = notifxErrors.Register("NO_PROVIDER", errx.TypeInternal, "No email provider configured")
)
