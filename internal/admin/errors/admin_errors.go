package adminerrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"Please provide username, email, and password",
		http.StatusBadRequest,
	)

	ErrSelfDeletion = apperror.New(
		apperror.CodeSelfDeletion,
		"You cannot delete your own account",
		http.StatusBadRequest,
	)

	ErrAdminNotFound = apperror.New(
		apperror.CodeNotFound,
		"Admin not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrMissingNewPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Please provide new password",
		http.StatusBadRequest,
	)

	ErrPasswordTooShort = apperror.New(
		apperror.CodePasswordTooShort,
		"Password must be at least 6 characters",
		http.StatusBadRequest,
	)
)
