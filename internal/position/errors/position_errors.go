package positionerrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)
	ErrPositionTitleExists = apperror.New(
		apperror.CodeConflict,
		"Position with the same title already exists",
		http.StatusConflict,
	)
	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid position ID",
		http.StatusBadRequest,
	)
)
