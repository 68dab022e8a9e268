package autherrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrMissingCredentials = apperror.New(
		apperror.CodeInvalidInput,
		"Please provide both username and password",
		http.StatusBadRequest,
	)

	// ErrInvalidCredentials never says whether the username or the password
	// was wrong.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidCredentials,
		"Invalid credentials",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeTokenExpired,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrSessionRevoked = apperror.New(
		apperror.CodeInvalidToken,
		"Session is no longer valid",
		http.StatusUnauthorized,
	)

	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrMissingPasswords = apperror.New(
		apperror.CodeInvalidInput,
		"Please provide both old and new password",
		http.StatusBadRequest,
	)

	ErrWrongPassword = apperror.New(
		apperror.CodeWrongPassword,
		"Old password is incorrect",
		http.StatusBadRequest,
	)

	ErrPasswordTooShort = apperror.New(
		apperror.CodePasswordTooShort,
		"New password must be at least 6 characters",
		http.StatusBadRequest,
	)

	ErrPasswordTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Password must be at most 72 bytes",
		http.StatusBadRequest,
	)

	ErrDuplicateUsername = apperror.New(
		apperror.CodeDuplicateUsername,
		"Username already exists",
		http.StatusBadRequest,
	)

	ErrDuplicateEmail = apperror.New(
		apperror.CodeDuplicateEmail,
		"Email already exists",
		http.StatusBadRequest,
	)
)
