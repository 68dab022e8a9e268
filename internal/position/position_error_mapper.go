package position

import (
	"errors"
	"strings"

	positionerrors "go-hrm/internal/position/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_positions_title" {
		return positionerrors.ErrPositionTitleExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "uq_positions_title") ||
		strings.Contains(errMsg, "unique constraint failed: positions.title") {
		return positionerrors.ErrPositionTitleExists
	}

	return err
}
