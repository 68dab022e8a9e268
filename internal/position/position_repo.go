package position

import (
	"context"
	"database/sql"

	"go-hrm/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, pos *Position) error
	FindAll(ctx context.Context) ([]Position, error)
	FindByID(ctx context.Context, id string) (*Position, error)
	Update(ctx context.Context, pos *Position) error
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

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.conn(ctx).Create(pos).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var positions []Position
	err := r.conn(ctx).
		Order("title ASC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	var pos Position
	err := r.conn(ctx).
		First(&pos, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *repository) Update(ctx context.Context, pos *Position) error {
	return r.conn(ctx).
		Model(pos).
		Select("title", "description", "updated_at").
		Updates(pos).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Position{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
