package statistics

import (
	"context"

	"go-hrm/internal/shared/connection"
	"go-hrm/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusCount struct {
	Status string
	Count  int64
}

// DepartmentRow is one department with its users counted per status.
type DepartmentRow struct {
	ID            uuid.UUID
	Name          string
	TotalUsers    int64
	ActiveUsers   int64
	InactiveUsers int64
	OnLeaveUsers  int64
}

//go:generate mockgen -source=statistics_repo.go -destination=mock/statistics_repo_mock.go -package=mock
type Repository interface {
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	DepartmentBreakdown(ctx context.Context) ([]DepartmentRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, nil)
}

func (r *repository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.conn(ctx).
		Table("users").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// DepartmentBreakdown includes departments with no users.
func (r *repository) DepartmentBreakdown(ctx context.Context) ([]DepartmentRow, error) {
	var rows []DepartmentRow
	err := r.conn(ctx).
		Table("departments").
		Select(
			"departments.id, departments.name, "+
				"COUNT(users.id) AS total_users, "+
				"COUNT(CASE WHEN users.status = ? THEN 1 END) AS active_users, "+
				"COUNT(CASE WHEN users.status = ? THEN 1 END) AS inactive_users, "+
				"COUNT(CASE WHEN users.status = ? THEN 1 END) AS on_leave_users",
			user.StatusActive, user.StatusInactive, user.StatusOnLeave,
		).
		Joins("LEFT JOIN users ON users.department_id = departments.id").
		Group("departments.id, departments.name").
		Order("departments.name ASC").
		Scan(&rows).Error
	return rows, err
}
