package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationFileRejected  ErrorCode = "VALIDATION_006"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound          ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists     ErrorCode = "CATEGORY_002"
	CategoryDirectionMismatch ErrorCode = "CATEGORY_003"
	CategoryInvalidParent     ErrorCode = "CATEGORY_004"
	CategoryInactive          ErrorCode = "CATEGORY_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound ErrorCode = "ACCOUNT_001"
	AccountInactive ErrorCode = "ACCOUNT_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount     ErrorCode = "TRANSACTION_001"
	TransactionMissingFields     ErrorCode = "TRANSACTION_002"
	TransactionSubmitInProgress  ErrorCode = "TRANSACTION_003"
	TransactionSubmissionFailed  ErrorCode = "TRANSACTION_004"
	TransactionInvalidType       ErrorCode = "TRANSACTION_005"
	TransactionInvalidReferences ErrorCode = "TRANSACTION_006"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	ResourceNotFound         ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationFileRejected:  "Attached file was rejected",

	// Category errors
	CategoryNotFound:          "Category not found",
	CategoryAlreadyExists:     "A category with this name already exists",
	CategoryDirectionMismatch: "Category does not match the transaction type",
	CategoryInvalidParent:     "Parent category is not valid for this category",
	CategoryInactive:          "Category is inactive",

	// Account errors
	AccountNotFound: "Account or credit card not found",
	AccountInactive: "Account or credit card is inactive",

	// Transaction errors
	TransactionInvalidAmount:     "Amount must be a number greater than zero",
	TransactionMissingFields:     "Please fill in all required fields",
	TransactionSubmitInProgress:  "This form is already being submitted",
	TransactionSubmissionFailed:  "Could not save the transaction",
	TransactionInvalidType:       "Invalid transaction type",
	TransactionInvalidReferences: "Invalid account or category reference",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	ResourceNotFound:         "Resource not found",
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
