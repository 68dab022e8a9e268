package auth

import (
	"time"

	"go-hrm/internal/domain"

	"github.com/google/uuid"
)

// Account is a login identity used for access control. It is unrelated to
// the employee roster.
type Account struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username     string     `gorm:"size:150;not null;uniqueIndex:uq_accounts_username"`
	Email        string     `gorm:"size:254;not null;uniqueIndex:uq_accounts_email"`
	PasswordHash string     `gorm:"size:255;not null"`
	IsStaff      bool       `gorm:"not null"`
	IsSuperuser  bool       `gorm:"not null"`
	IsActive     bool       `gorm:"not null"`
	DateJoined   time.Time  `gorm:"not null"`
	LastLogin    *time.Time
}

func (a *Account) Role() string {
	return domain.RoleFor(a.IsStaff)
}

func (a *Account) Identity(sessionID string) domain.Identity {
	return domain.Identity{
		AccountID:   a.ID,
		Username:    a.Username,
		Email:       a.Email,
		IsStaff:     a.IsStaff,
		IsSuperuser: a.IsSuperuser,
		Role:        a.Role(),
		SessionID:   sessionID,
	}
}
