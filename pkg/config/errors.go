package config

import "github.com/Abraxas-365/mailbatch/pkg/errx"

var configErrors = errx.NewRegistry("CONFIG")

var (
	ErrLoad    = configErrors.Register("LOAD", errx.TypeValidation, "Failed to load configuration")
	ErrInvalid = configErrors.Register("INVALID", errx.TypeValidation, "Invalid configuration")
)
