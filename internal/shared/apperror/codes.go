package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput       = "INVALID_INPUT"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidDateFormat  = "INVALID_DATE_FORMAT"
	CodeSalaryBelowMinimum = "SALARY_BELOW_ROLE_MINIMUM"
	CodeInvalidAssociation = "INVALID_ASSOCIATION"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidState       = "INVALID_STATE"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"

	// Signals (2xx/3xx without body)
	CodeNoContent   = "NO_CONTENT"
	CodeNotModified = "NOT_MODIFIED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
