package notifxsmtp

import "github.com/Abraxas-365/mailbatch/pkg/errx"

var smtpErrors = errx.NewRegistry("NOTIFX_SMTP")

var (
	ErrDialFailed   = smtpErrors.Register("DIAL_FAILED", errx.TypeExternal, "SMTP connection failed")
	ErrSendFailed   = smtpErrors.Register("SEND_FAILED", errx.TypeExternal, "SMTP send failed")
	ErrBuildMessage = smtpErrors.Register("BUILD_MESSAGE", errx.TypeValidation, "Failed to build SMTP message")
)
