package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeedAccount struct {
	Username    string
	Email       string
	Password    string
	IsStaff     bool
	IsSuperuser bool
}

// DefaultSeedAccounts are the development logins: one superuser and one
// regular account.
func DefaultSeedAccounts() []SeedAccount {
	return []SeedAccount{
		{Username: "admin", Email: "admin@example.com", Password: "admin123", IsStaff: true, IsSuperuser: true},
		{Username: "user", Email: "user@example.com", Password: "user123"},
	}
}

// Seed creates each account whose username is not taken yet. Existing
// accounts are left untouched, so running it twice is harmless.
func Seed(ctx context.Context, repo Repository, accounts []SeedAccount) (int, error) {
	created := 0
	for _, s := range accounts {
		_, err := repo.GetByUsername(ctx, s.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		hash, err := HashPassword(s.Password)
		if err != nil {
			return created, err
		}

		if err := repo.Create(ctx, &Account{
			ID:           uuid.New(),
			Username:     s.Username,
			Email:        s.Email,
			PasswordHash: hash,
			IsStaff:      s.IsStaff,
			IsSuperuser:  s.IsSuperuser,
			IsActive:     true,
			DateJoined:   time.Now().UTC(),
		}); err != nil {
			return created, MapRepositoryError(err)
		}
		created++
	}
	return created, nil
}
