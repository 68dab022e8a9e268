package departmenterrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameExists = apperror.New(
		apperror.CodeConflict,
		"Department with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
