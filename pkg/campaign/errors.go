package campaign

import "github.com/Abraxas-365/mailbatch/pkg/errx"

var campaignErrors = errx.NewRegistry("CAMPAIGN")

var (
	ErrUnsupportedLanguage = campaignErrors.Register("UNSUPPORTED_LANGUAGE", errx.TypeValidation, "Unsupported language")
	ErrMissingAddress      = campaignErrors.Register("MISSING_ADDRESS", errx.TypeValidation, "Recipient has no address")
	ErrInvalidTables       = campaignErrors.Register("INVALID_TABLES", errx.TypeValidation, "Invalid localization tables")
	ErrRenderFailed        = campaignErrors.Register("RENDER_FAILED", errx.TypeInternal, "Failed to render message")
)
