package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput        = "INVALID_INPUT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeTooManyRequests     = "TOO_MANY_REQUESTS"
	CodeDuplicateEmail      = "DUPLICATE_EMAIL"
	CodeDuplicateEmployeeID = "DUPLICATE_EMPLOYEE_ID"
	CodeDuplicateUsername   = "DUPLICATE_USERNAME"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodePasswordTooShort    = "PASSWORD_TOO_SHORT"
	CodeWrongPassword       = "WRONG_PASSWORD"
	CodeSelfDeletion        = "SELF_DELETION"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeTokenExpired        = "TOKEN_EXPIRED"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
