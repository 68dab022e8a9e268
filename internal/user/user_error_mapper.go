package user

import (
	"errors"
	"strings"

	usererrors "go-hrm/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError turns store errors into domain errors. Unique
// violations land here when two writers race past the validator.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_users_email":
				return usererrors.ErrDuplicateEmail
			case "uq_users_employee_id":
				return usererrors.ErrDuplicateEmployeeID
			}
		case "23503":
			return usererrors.ErrDepartmentNotFound
		case "23514":
			if pgErr.ConstraintName == "ck_users_gender" {
				return usererrors.ErrInvalidGender
			}
			return usererrors.ErrInvalidStatus
		}
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "uq_users_email"),
		strings.Contains(errMsg, "unique constraint failed: users.email"):
		return usererrors.ErrDuplicateEmail
	case strings.Contains(errMsg, "uq_users_employee_id"),
		strings.Contains(errMsg, "unique constraint failed: users.employee_id"):
		return usererrors.ErrDuplicateEmployeeID
	case strings.Contains(errMsg, "foreign key constraint failed"):
		return usererrors.ErrDepartmentNotFound
	}

	return err
}
