package auth

import (
	"errors"
	"strings"

	autherrors "go-hrm/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError maps account store errors to auth sentinels. Admin
// account writes go through it as well.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrAccountNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_accounts_username":
			return autherrors.ErrDuplicateUsername
		case "uq_accounts_email":
			return autherrors.ErrDuplicateEmail
		}
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "uq_accounts_username"),
		strings.Contains(errMsg, "unique constraint failed: accounts.username"):
		return autherrors.ErrDuplicateUsername
	case strings.Contains(errMsg, "uq_accounts_email"),
		strings.Contains(errMsg, "unique constraint failed: accounts.email"):
		return autherrors.ErrDuplicateEmail
	}

	return err
}
