package auth

import (
	"context"
	"database/sql"
	"time"

	"go-hrm/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListStaff(ctx context.Context) ([]Account, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, account *Account) error {
	return r.conn(ctx).Create(account).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	var a Account
	if err := r.conn(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	var a Account
	if err := r.conn(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&Account{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&Account{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *repository) ListStaff(ctx context.Context) ([]Account, error) {
	var accounts []Account
	err := r.conn(ctx).
		Where("is_staff = ?", true).
		Order("username ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	res := r.conn(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.conn(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&Account{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
