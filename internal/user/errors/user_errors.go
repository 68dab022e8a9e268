package usererrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrDuplicateEmail = apperror.New(
		apperror.CodeDuplicateEmail,
		"A user with this email already exists",
		http.StatusBadRequest,
	)

	ErrDuplicateEmployeeID = apperror.New(
		apperror.CodeDuplicateEmployeeID,
		"A user with this employee ID already exists",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidStatus,
		"Invalid status",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidGender = apperror.New(
		apperror.CodeInvalidInput,
		"Gender must be one of M, F or O",
		http.StatusBadRequest,
	)

	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department does not exist",
		http.StatusBadRequest,
	)

	ErrBlankName = apperror.New(
		apperror.CodeInvalidInput,
		"First and last name must not be blank",
		http.StatusBadRequest,
	)
)
