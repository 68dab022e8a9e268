package domain

import "github.com/google/uuid"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity is an authenticated account together with its derived role.
// It is passed explicitly to every operation that depends on the caller.
type Identity struct {
	AccountID   uuid.UUID
	Username    string
	Email       string
	IsStaff     bool
	IsSuperuser bool
	Role        string
	SessionID   string
}

// RoleFor derives the role of an account: staff accounts are admins.
func RoleFor(isStaff bool) string {
	if isStaff {
		return RoleAdmin
	}
	return RoleUser
}

// EnforceRequest is the input for RBAC checks.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
