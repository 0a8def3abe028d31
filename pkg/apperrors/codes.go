package apperrors

// ErrorCode is a machine-readable error code returned to clients.
type ErrorCode string

const (
	// Cross-cutting
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"

	// Auth
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Users
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified    ErrorCode = "USER_NOT_VERIFIED"
	CodeAlreadyVerified    ErrorCode = "ALREADY_VERIFIED"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole    ErrorCode = "INVALID_USER_ROLE"

	// Jobs and applications
	CodeJobNotFound        ErrorCode = "JOB_NOT_FOUND"
	CodeJobNotOpen         ErrorCode = "JOB_NOT_OPEN"
	CodeAlreadyApplied     ErrorCode = "ALREADY_APPLIED"
	CodeApplicationClosed  ErrorCode = "APPLICATION_CLOSED"
	CodeInvalidApplication ErrorCode = "INVALID_APPLICATION"
	CodeAlreadyCompleted   ErrorCode = "ALREADY_COMPLETED"
)
