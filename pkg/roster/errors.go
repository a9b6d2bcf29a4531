package roster

import "github.com/Abraxas-365/mailbatch/pkg/errx"

var rosterErrors = errx.NewRegistry("ROSTER")

var (
	ErrUnsupportedFormat = rosterErrors.Register("UNSUPPORTED_FORMAT", errx.TypeValidation, "Unsupported roster format")
	ErrReadFailed        = rosterErrors.Register("READ_FAILED", errx.TypeExternal, "Failed to read roster")
	ErrMalformed         = rosterErrors.Register("MALFORMED", errx.TypeValidation, "Roster file is malformed")
	ErrSheetNotFound     = rosterErrors.Register("SHEET_NOT_FOUND", errx.TypeNotFound, "Worksheet not found")
	ErrMissingColumn     = rosterErrors.Register("MISSING_COLUMN", errx.TypeValidation, "Required column missing from header")
	ErrBlankField        = rosterErrors.Register("BLANK_FIELD", errx.TypeValidation, "Required field is blank")
)
