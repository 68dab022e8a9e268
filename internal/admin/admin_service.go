package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	adminerrors "go-hrm/internal/admin/errors"
	"go-hrm/internal/audit"
	"go-hrm/internal/auth"
	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/domain"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	ListAdmins(ctx context.Context) ([]AdminResponse, error)
	CreateAdmin(ctx context.Context, actor domain.Identity, req CreateAdminRequest) (AdminSummary, error)
	DeleteAdmin(ctx context.Context, actor domain.Identity, id string) error
	ChangeUserPassword(ctx context.Context, actor domain.Identity, id string, newPassword string) (string, error)
}

type service struct {
	db       *sql.DB
	repo     auth.Repository
	sessions auth.SessionStore
	audit    audit.Logger
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo auth.Repository,
	sessions auth.SessionStore,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &service{db: db, repo: repo, sessions: sessions, audit: auditLogger, logger: l}
}

func (s *service) ListAdmins(ctx context.Context) ([]AdminResponse, error) {
	accounts, err := s.repo.ListStaff(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list admins failed", zap.Error(err))
		return nil, err
	}

	res := make([]AdminResponse, len(accounts))
	for i := range accounts {
		a := auth.ToAccountResponse(&accounts[i])
		res[i] = AdminResponse{
			ID:          a.ID,
			Username:    a.Username,
			Email:       a.Email,
			IsSuperuser: a.IsSuperuser,
			DateJoined:  a.DateJoined,
			LastLogin:   a.LastLogin,
		}
	}
	return res, nil
}

// CreateAdmin always sets the staff flag. The unique indexes back up the
// username and email checks when two requests race.
func (s *service) CreateAdmin(
	ctx context.Context,
	actor domain.Identity,
	req CreateAdminRequest,
) (AdminSummary, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return AdminSummary{}, adminerrors.ErrMissingFields
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create admin begin tx failed", zap.Error(err))
		return AdminSummary{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	taken, err := qtx.ExistsByUsername(ctx, username)
	if err != nil {
		return AdminSummary{}, err
	}
	if taken {
		return AdminSummary{}, autherrors.ErrDuplicateUsername
	}

	taken, err = qtx.ExistsByEmail(ctx, email)
	if err != nil {
		return AdminSummary{}, err
	}
	if taken {
		return AdminSummary{}, autherrors.ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return AdminSummary{}, err
	}

	account := &auth.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsStaff:      true,
		IsSuperuser:  req.IsSuperuser,
		IsActive:     true,
		DateJoined:   time.Now().UTC(),
	}

	if err := qtx.Create(ctx, account); err != nil {
		log.Warn("create admin persist failed", zap.Error(err))
		return AdminSummary{}, auth.MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create admin commit failed", zap.Error(err))
		return AdminSummary{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:   audit.ActionAdminCreated,
		ActorID:  actor.AccountID.String(),
		TargetID: account.ID.String(),
		Meta:     map[string]any{"username": username, "is_superuser": req.IsSuperuser},
	})
	log.Info("create admin success", zap.String("account_id", account.ID.String()))

	return AdminSummary{
		ID:          account.ID.String(),
		Username:    account.Username,
		Email:       account.Email,
		IsStaff:     account.IsStaff,
		IsSuperuser: account.IsSuperuser,
	}, nil
}

func (s *service) DeleteAdmin(ctx context.Context, actor domain.Identity, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	targetID, err := uuid.Parse(id)
	if err != nil {
		return adminerrors.ErrAdminNotFound
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return adminerrors.ErrAdminNotFound
	}
	if err != nil {
		return err
	}
	if !target.IsStaff {
		return adminerrors.ErrAdminNotFound
	}

	if target.ID == actor.AccountID {
		log.Warn("delete admin rejected self deletion", zap.String("account_id", target.ID.String()))
		return adminerrors.ErrSelfDeletion
	}

	if err := s.repo.Delete(ctx, target.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adminerrors.ErrAdminNotFound
		}
		return err
	}

	if err := s.sessions.RevokeAll(ctx, target.ID); err != nil {
		log.Error("delete admin session revoke failed", zap.Error(err))
	}

	s.audit.Log(ctx, audit.Entry{
		Action:   audit.ActionAdminDeleted,
		ActorID:  actor.AccountID.String(),
		TargetID: target.ID.String(),
		Meta:     map[string]any{"username": target.Username},
	})
	log.Info("delete admin success", zap.String("account_id", target.ID.String()))
	return nil
}

// ChangeUserPassword resets any account's password and signs that account
// out everywhere. It returns the target's username.
func (s *service) ChangeUserPassword(
	ctx context.Context,
	actor domain.Identity,
	id string,
	newPassword string,
) (string, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	targetID, err := uuid.Parse(id)
	if err != nil {
		return "", adminerrors.ErrUserNotFound
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", adminerrors.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	if newPassword == "" {
		return "", adminerrors.ErrMissingNewPassword
	}
	if !auth.PasswordLongEnough(newPassword) {
		return "", adminerrors.ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdatePassword(ctx, target.ID, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", adminerrors.ErrUserNotFound
		}
		log.Error("change user password persist failed", zap.Error(err))
		return "", err
	}

	if err := s.sessions.RevokeAll(ctx, target.ID); err != nil {
		log.Error("change user password session revoke failed",
			zap.String("account_id", target.ID.String()),
			zap.Error(err),
		)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:   audit.ActionPasswordReset,
		ActorID:  actor.AccountID.String(),
		TargetID: target.ID.String(),
		Message:  fmt.Sprintf("password reset for %s", target.Username),
	})
	log.Info("change user password success", zap.String("account_id", target.ID.String()))
	return target.Username, nil
}
