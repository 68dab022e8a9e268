package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-hrm/internal/audit"
	"go-hrm/internal/auth"
	autherrors "go-hrm/internal/auth/errors"
	authMock "go-hrm/internal/auth/mock"
	"go-hrm/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (r *recordingAudit) Log(ctx context.Context, entry audit.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Action
	}
	return out
}

type serviceDeps struct {
	service  auth.Service
	repo     *authMock.MockRepository
	sessions auth.SessionStore
	audit    *recordingAudit
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)

	mr := miniredis.RunT(t)
	sessions := auth.NewSessionStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	rec := &recordingAudit{}

	return &serviceDeps{
		service:  auth.NewService(repo, sessions, auth.NewTokenIssuer("test-secret", time.Hour), rec),
		repo:     repo,
		sessions: sessions,
		audit:    rec,
	}
}

func newAccount(t *testing.T, username, password string, staff bool) *auth.Account {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &auth.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsStaff:      staff,
		IsActive:     true,
		DateJoined:   time.Now().UTC(),
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Authenticate(ctx, "admin", "")
		assert.ErrorIs(t, err, autherrors.ErrMissingCredentials)

		_, err = deps.service.Authenticate(ctx, "  ", "secret")
		assert.ErrorIs(t, err, autherrors.ErrMissingCredentials)
	})

	t.Run("unknown username is indistinguishable from wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)
		account := newAccount(t, "admin", "admin123", true)

		deps.repo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().GetByUsername(ctx, "admin").Return(account, nil)

		_, errUnknown := deps.service.Authenticate(ctx, "ghost", "admin123")
		_, errWrong := deps.service.Authenticate(ctx, "admin", "nope")

		assert.ErrorIs(t, errUnknown, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, autherrors.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
		assert.Equal(t, []string{audit.ActionLoginFailed, audit.ActionLoginFailed}, deps.audit.actions())
	})

	t.Run("inactive account", func(t *testing.T) {
		deps := setupServiceTest(t)
		account := newAccount(t, "admin", "admin123", true)
		account.IsActive = false

		deps.repo.EXPECT().GetByUsername(ctx, "admin").Return(account, nil)

		_, err := deps.service.Authenticate(ctx, "admin", "admin123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("success issues a resolvable token", func(t *testing.T) {
		deps := setupServiceTest(t)
		account := newAccount(t, "admin", "admin123", true)
		account.IsSuperuser = true

		deps.repo.EXPECT().GetByUsername(ctx, "admin").Return(account, nil)
		deps.repo.EXPECT().TouchLastLogin(ctx, account.ID, gomock.Any()).Return(nil)
		deps.repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)

		result, err := deps.service.Authenticate(ctx, "admin", "admin123")
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "admin", result.Account.Role)
		assert.True(t, result.Account.IsSuperuser)
		assert.NotNil(t, result.Account.LastLogin)

		identity, err := deps.service.ResolveToken(ctx, result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, account.ID, identity.AccountID)
		assert.Equal(t, domain.RoleAdmin, identity.Role)
		assert.Equal(t, []string{audit.ActionLogin}, deps.audit.actions())
	})

	t.Run("regular account gets the user role", func(t *testing.T) {
		deps := setupServiceTest(t)
		account := newAccount(t, "user", "user123", false)

		deps.repo.EXPECT().GetByUsername(ctx, "user").Return(account, nil)
		deps.repo.EXPECT().TouchLastLogin(ctx, account.ID, gomock.Any()).Return(nil)

		result, err := deps.service.Authenticate(ctx, "user", "user123")
		require.NoError(t, err)
		assert.Equal(t, "user", result.Account.Role)
		assert.False(t, result.Account.IsStaff)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	account := newAccount(t, "admin", "admin123", true)

	deps.repo.EXPECT().GetByUsername(ctx, "admin").Return(account, nil)
	deps.repo.EXPECT().TouchLastLogin(ctx, account.ID, gomock.Any()).Return(nil)

	result, err := deps.service.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)

	require.NoError(t, deps.service.Logout(ctx, result.AccessToken))

	_, err = deps.service.ResolveToken(ctx, result.AccessToken)
	assert.ErrorIs(t, err, autherrors.ErrSessionRevoked)

	t.Run("garbage and empty tokens are ignored", func(t *testing.T) {
		assert.NoError(t, deps.service.Logout(ctx, ""))
		assert.NoError(t, deps.service.Logout(ctx, "garbage"))
	})
}

func TestAuthService_ChangeOwnPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("session stays valid after the change", func(t *testing.T) {
		deps := setupServiceTest(t)
		account := newAccount(t, "admin", "admin123", true)

		deps.repo.EXPECT().GetByUsername(ctx, "admin").Return(account, nil)
		deps.repo.EXPECT().TouchLastLogin(ctx, account.ID, gomock.Any()).Return(nil)
		deps.repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil).AnyTimes()
		deps.repo.EXPECT().
			UpdatePassword(ctx, account.ID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, hash string) error {
				assert.True(t, auth.CheckPassword(hash, "s3cret!"))
				return nil
			})

		result, err := deps.service.Authenticate(ctx, "admin", "admin123")
		require.NoError(t, err)
		identity, err := deps.service.ResolveToken(ctx, result.AccessToken)
		require.NoError(t, err)

		require.NoError(t, deps.service.ChangeOwnPassword(ctx, identity, "admin123", "s3cret!"))

		_, err = deps.service.ResolveToken(ctx, result.AccessToken)
		assert.NoError(t, err)
		assert.Contains(t, deps.audit.actions(), audit.ActionPasswordChanged)
	})

	t.Run("wrong old password", func(t *testing.T) {
		deps := setupServiceTest(t)
		account := newAccount(t, "admin", "admin123", true)

		deps.repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)

		err := deps.service.ChangeOwnPassword(ctx, account.Identity("sid"), "wrong", "newpass1")
		assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
	})

	t.Run("new password too short", func(t *testing.T) {
		deps := setupServiceTest(t)
		account := newAccount(t, "admin", "admin123", true)

		deps.repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)

		err := deps.service.ChangeOwnPassword(ctx, account.Identity("sid"), "admin123", "12345")
		assert.ErrorIs(t, err, autherrors.ErrPasswordTooShort)
	})

	t.Run("missing fields", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.ChangeOwnPassword(ctx, domain.Identity{AccountID: uuid.New()}, "", "newpass1")
		assert.ErrorIs(t, err, autherrors.ErrMissingPasswords)
	})
}

func TestAuthService_ResolveToken(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted account", func(t *testing.T) {
		deps := setupServiceTest(t)
		account := newAccount(t, "admin", "admin123", true)

		deps.repo.EXPECT().GetByUsername(ctx, "admin").Return(account, nil)
		deps.repo.EXPECT().TouchLastLogin(ctx, account.ID, gomock.Any()).Return(nil)
		deps.repo.EXPECT().GetByID(ctx, account.ID).Return(nil, gorm.ErrRecordNotFound)

		result, err := deps.service.Authenticate(ctx, "admin", "admin123")
		require.NoError(t, err)

		_, err = deps.service.ResolveToken(ctx, result.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("revoked by admin reset", func(t *testing.T) {
		deps := setupServiceTest(t)
		account := newAccount(t, "user", "user123", false)

		deps.repo.EXPECT().GetByUsername(ctx, "user").Return(account, nil)
		deps.repo.EXPECT().TouchLastLogin(ctx, account.ID, gomock.Any()).Return(nil)

		result, err := deps.service.Authenticate(ctx, "user", "user123")
		require.NoError(t, err)

		require.NoError(t, deps.sessions.RevokeAll(ctx, account.ID))

		_, err = deps.service.ResolveToken(ctx, result.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrSessionRevoked)
	})
}
