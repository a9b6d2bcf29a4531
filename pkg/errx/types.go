package errx

// Type represents the category of error
type Type string

const (
	// TypeInternal represents programming or environment faults
	TypeInternal Type = "INTERNAL"

	// TypeValidation represents invalid input data or configuration
	TypeValidation Type = "VALIDATION"

	// TypeNotFound represents a missing file, sheet or column
	TypeNotFound Type = "NOT_FOUND"

	// TypeBusiness represents a rule of the batch that was not satisfied
	TypeBusiness Type = "BUSINESS"

	// TypeExternal represents errors from external services (mail transports, AWS)
	TypeExternal Type = "EXTERNAL"

	// TypeCancelled represents an operation the operator chose not to run
	TypeCancelled Type = "CANCELLED"
)

// String returns the string representation of the error type
func (t Type) String() string {
	return string(t)
}
