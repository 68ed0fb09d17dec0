package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeEmailNotConfirmed  ErrorCode = "EMAIL_NOT_CONFIRMED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources
	CodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	CodePlanNotFound ErrorCode = "PLAN_NOT_FOUND"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"

	// System errors
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodePersistenceError ErrorCode = "PERSISTENCE_ERROR"
)
