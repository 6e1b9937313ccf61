package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Neighborhood (NIL) error codes (NIL_*)
const (
	NilNotFound     ErrorCode = "NIL_001"
	NilNoMatch      ErrorCode = "NIL_002"
	NilNoPriceData  ErrorCode = "NIL_003"
	NilIndexEmpty   ErrorCode = "NIL_004"
	NilInvalidInput ErrorCode = "NIL_005"
)

// OMI zone error codes (ZONE_*)
const (
	ZoneNotFound ErrorCode = "ZONE_001"
	ZoneNoSeries ErrorCode = "ZONE_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Admin error codes (ADMIN_*)
const (
	AdminUnauthorized ErrorCode = "ADMIN_001"
	AdminDisabled     ErrorCode = "ADMIN_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Neighborhood errors
	NilNotFound:     "Neighborhood not found",
	NilNoMatch:      "No neighborhood matched the given input",
	NilNoPriceData:  "Neighborhood has no price coverage (park or rural zone)",
	NilIndexEmpty:   "Neighborhood index is unavailable",
	NilInvalidInput: "Invalid neighborhood identifier or query",

	// Zone errors
	ZoneNotFound: "OMI zone not found",
	ZoneNoSeries: "No price series available for this zone",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Admin errors
	AdminUnauthorized: "Invalid or missing admin key",
	AdminDisabled:     "Admin operations are disabled on this deployment",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
