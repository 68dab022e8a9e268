package department

import (
	"errors"
	"strings"

	departmenterrors "go-hrm/internal/department/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_departments_name" {
			return departmenterrors.ErrDepartmentNameExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "uq_departments_name") ||
		strings.Contains(errMsg, "unique constraint failed: departments.name") {
		return departmenterrors.ErrDepartmentNameExists
	}

	return err
}
