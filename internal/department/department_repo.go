package department

import (
	"context"
	"database/sql"

	"go-hrm/internal/shared/connection"

	"gorm.io/gorm"
)

const userCountSelect = "departments.*, " +
	"(SELECT COUNT(*) FROM users WHERE users.department_id = departments.id) AS user_count"

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]DepartmentWithCount, error)
	FindByID(ctx context.Context, id string) (*DepartmentWithCount, error)
	Update(ctx context.Context, dept *Department) error
	DetachUsers(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]DepartmentWithCount, error) {
	var rows []DepartmentWithCount
	err := r.conn(ctx).
		Model(&Department{}).
		Select(userCountSelect).
		Order("departments.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*DepartmentWithCount, error) {
	var rows []DepartmentWithCount
	err := r.conn(ctx).
		Model(&Department{}).
		Select(userCountSelect).
		Where("departments.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.conn(ctx).
		Model(dept).
		Select("name", "description", "updated_at").
		Updates(dept).Error
}

// DetachUsers clears department_id on every user of the department.
func (r *repository) DetachUsers(ctx context.Context, id string) (int64, error) {
	res := r.conn(ctx).
		Table("users").
		Where("department_id = ?", id).
		Update("department_id", nil)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
