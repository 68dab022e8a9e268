package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Session returns a gorm handle bound to ctx. When tx is set, statements run
// on that *sql.Tx so repositories join the caller's transaction.
func Session(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	s := db.WithContext(ctx)
	if tx != nil {
		s.Statement.ConnPool = tx
	}
	return s
}
