package position

import (
	"context"
	"database/sql"
	"time"

	positionerrors "go-hrm/internal/position/errors"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreatePositionRequest,
) (PositionResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create position begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pos := &Position{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
	}

	if err := qtx.Create(ctx, pos); err != nil {
		s.logger.Warn("create position persist failed", zap.String("request_id", rid), zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
	}

	s.logger.Info("create position success",
		zap.String("request_id", rid),
		zap.String("position_id", pos.ID.String()),
	)
	return mapToResponse(*pos), nil
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	positions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(positions), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}

	pos, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*pos), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdatePositionRequest,
) (PositionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PositionResponse{}, positionerrors.ErrInvalidPositionID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pos, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	pos.Title = req.Title
	pos.Description = req.Description

	if err := qtx.Update(ctx, pos); err != nil {
		return PositionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
	}

	return mapToResponse(*pos), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return positionerrors.ErrInvalidPositionID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(pos Position) PositionResponse {
	resp := PositionResponse{
		ID:          pos.ID.String(),
		Title:       pos.Title,
		Description: pos.Description,
	}
	if !pos.CreatedAt.IsZero() {
		resp.CreatedAt = pos.CreatedAt.Format(time.RFC3339)
	}
	if !pos.UpdatedAt.IsZero() {
		resp.UpdatedAt = pos.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(posts []Position) []PositionResponse {
	res := make([]PositionResponse, len(posts))
	for i, d := range posts {
		res[i] = mapToResponse(d)
	}
	return res
}
