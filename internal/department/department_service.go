package department

import (
	"context"
	"database/sql"
	"time"

	departmenterrors "go-hrm/internal/department/errors"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		s.logger.Warn("create department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create department commit failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.String("department_id", dept.ID.String()),
	)
	return mapToResponse(DepartmentWithCount{Department: *dept}), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateDepartmentRequest,
) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.Name = req.Name
	dept.Description = req.Description

	if err := qtx.Update(ctx, &dept.Department); err != nil {
		s.logger.Warn("update department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update department commit failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

// Delete nullifies the department on its users before removing it, in the
// same transaction.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	detached, err := qtx.DetachUsers(ctx, id)
	if err != nil {
		s.logger.Error("delete department detach users failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete department commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete department success",
		zap.String("request_id", rid),
		zap.String("department_id", id),
		zap.Int64("detached_users", detached),
	)
	return nil
}

func mapToResponse(dept DepartmentWithCount) DepartmentResponse {
	resp := DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Description: dept.Description,
		UserCount:   dept.UserCount,
	}
	if !dept.CreatedAt.IsZero() {
		resp.CreatedAt = dept.CreatedAt.Format(time.RFC3339)
	}
	if !dept.UpdatedAt.IsZero() {
		resp.UpdatedAt = dept.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(depts []DepartmentWithCount) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
