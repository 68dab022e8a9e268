package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrm/internal/audit"
	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/domain"
	"go-hrm/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Authenticate(ctx context.Context, username, password string) (LoginResult, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, identity domain.Identity) (AccountResponse, error)
	ChangeOwnPassword(ctx context.Context, identity domain.Identity, oldPassword, newPassword string) error
	ResolveToken(ctx context.Context, token string) (domain.Identity, error)
}

type service struct {
	repo     Repository
	sessions SessionStore
	tokens   *TokenIssuer
	audit    audit.Logger
	logger   *zap.Logger
}

func NewService(
	repo Repository,
	sessions SessionStore,
	tokens *TokenIssuer,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &service{
		repo:     repo,
		sessions: sessions,
		tokens:   tokens,
		audit:    auditLogger,
		logger:   l,
	}
}

func (s *service) Authenticate(ctx context.Context, username, password string) (LoginResult, error) {
	rid := contextutil.GetRequestID(ctx)
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, autherrors.ErrMissingCredentials
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("authenticate lookup failed", zap.String("request_id", rid), zap.Error(err))
			return LoginResult{}, err
		}
		CheckPassword(string(dummyHash()), password)
		s.rejectLogin(ctx, username, "unknown username")
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	if !CheckPassword(account.PasswordHash, password) {
		s.rejectLogin(ctx, username, "wrong password")
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}
	if !account.IsActive {
		s.rejectLogin(ctx, username, "inactive account")
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(ctx, account.ID, s.tokens.TTL())
	if err != nil {
		s.logger.Error("authenticate session create failed", zap.String("request_id", rid), zap.Error(err))
		return LoginResult{}, err
	}

	token, expiresAt, err := s.tokens.Issue(account, sessionID)
	if err != nil {
		s.logger.Error("authenticate token issue failed", zap.String("request_id", rid), zap.Error(err))
		return LoginResult{}, err
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastLogin(ctx, account.ID, now); err != nil {
		s.logger.Warn("authenticate last login update failed", zap.String("request_id", rid), zap.Error(err))
	} else {
		account.LastLogin = &now
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionLogin,
		ActorID: account.ID.String(),
		Meta:    map[string]any{"username": account.Username},
	})
	s.logger.Info("authenticate success",
		zap.String("request_id", rid),
		zap.String("account_id", account.ID.String()),
	)

	return LoginResult{
		Account:     ToAccountResponse(account),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *service) rejectLogin(ctx context.Context, username, reason string) {
	s.logger.Warn("authenticate rejected",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("username", username),
		zap.String("reason", reason),
	)
	s.audit.Log(ctx, audit.Entry{
		Action: audit.ActionLoginFailed,
		Meta:   map[string]any{"username": username},
	})
}

// Logout revokes the session behind token. Tokens that no longer parse
// have nothing left to revoke.
func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}

	if err := s.sessions.Revoke(ctx, claims.SessionID); err != nil {
		s.logger.Error("logout revoke failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionLogout,
		ActorID: claims.Subject,
	})
	return nil
}

func (s *service) Me(ctx context.Context, identity domain.Identity) (AccountResponse, error) {
	account, err := s.repo.GetByID(ctx, identity.AccountID)
	if err != nil {
		return AccountResponse{}, MapRepositoryError(err)
	}
	return ToAccountResponse(account), nil
}

// ChangeOwnPassword keeps the caller's existing sessions valid.
func (s *service) ChangeOwnPassword(
	ctx context.Context,
	identity domain.Identity,
	oldPassword, newPassword string,
) error {
	rid := contextutil.GetRequestID(ctx)
	if oldPassword == "" || newPassword == "" {
		return autherrors.ErrMissingPasswords
	}

	account, err := s.repo.GetByID(ctx, identity.AccountID)
	if err != nil {
		return MapRepositoryError(err)
	}

	if !CheckPassword(account.PasswordHash, oldPassword) {
		s.logger.Warn("change password rejected",
			zap.String("request_id", rid),
			zap.String("account_id", account.ID.String()),
		)
		return autherrors.ErrWrongPassword
	}
	if !PasswordLongEnough(newPassword) {
		return autherrors.ErrPasswordTooShort
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, account.ID, hash); err != nil {
		s.logger.Error("change password persist failed", zap.String("request_id", rid), zap.Error(err))
		return MapRepositoryError(err)
	}

	s.audit.Log(ctx, audit.Entry{
		Action:   audit.ActionPasswordChanged,
		ActorID:  account.ID.String(),
		TargetID: account.ID.String(),
	})
	s.logger.Info("change password success",
		zap.String("request_id", rid),
		zap.String("account_id", account.ID.String()),
	)
	return nil
}

// ResolveToken verifies the signature, the session and the account behind a
// token. The role is derived from the stored account, not from the claims.
func (s *service) ResolveToken(ctx context.Context, token string) (domain.Identity, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.Identity{}, err
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	ok, err := s.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return domain.Identity{}, err
	}
	if !ok {
		return domain.Identity{}, autherrors.ErrSessionRevoked
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Identity{}, autherrors.ErrInvalidToken
		}
		return domain.Identity{}, err
	}
	if !account.IsActive {
		return domain.Identity{}, autherrors.ErrInvalidToken
	}

	return account.Identity(claims.SessionID), nil
}
