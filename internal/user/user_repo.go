package user

import (
	"context"
	"database/sql"
	"strings"

	"go-hrm/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter narrows FindAll. Empty fields are ignored.
type ListFilter struct {
	Search       string
	Status       string
	DepartmentID string
	Gender       string
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context, filter ListFilter) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string, excludeID *uuid.UUID) (bool, error)
	DepartmentExists(ctx context.Context, id uuid.UUID) (bool, error)
	DistinctPositions(ctx context.Context) ([]string, error)
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.conn(ctx).Omit(clause.Associations).Create(u).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]User, error) {
	q := r.conn(ctx).
		Preload("Department").
		Order("users.created_at DESC")

	if filter.Status != "" {
		q = q.Where("users.status = ?", filter.Status)
	}
	if filter.DepartmentID != "" {
		q = q.Where("users.department_id = ?", filter.DepartmentID)
	}
	if filter.Gender != "" {
		q = q.Where("users.gender = ?", filter.Gender)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"(LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(users.email) LIKE ? "+
				"OR LOWER(COALESCE(users.employee_id, '')) LIKE ? "+
				"OR users.department_id IN (SELECT id FROM departments WHERE LOWER(name) LIKE ?))",
			like, like, like, like, like,
		)
	}

	var users []User
	err := q.Find(&users).Error
	return users, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Preload("Department").
		Where("users.id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update writes every column, including zero values.
func (r *repository) Update(ctx context.Context, u *User) error {
	return r.conn(ctx).Omit(clause.Associations).Save(u).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res := r.conn(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "email = ?", email, excludeID)
}

func (r *repository) ExistsByEmployeeID(ctx context.Context, employeeID string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "employee_id = ?", employeeID, excludeID)
}

func (r *repository) exists(ctx context.Context, cond string, value string, excludeID *uuid.UUID) (bool, error) {
	q := r.conn(ctx).Model(&User{}).Where(cond, value)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) DepartmentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("departments").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DistinctPositions(ctx context.Context) ([]string, error) {
	var positions []string
	err := r.conn(ctx).
		Model(&User{}).
		Where("position IS NOT NULL AND position <> ''").
		Distinct("position").
		Order("position ASC").
		Pluck("position", &positions).Error
	return positions, err
}
