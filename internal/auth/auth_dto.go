package auth

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type AccountResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	IsStaff     bool    `json:"is_staff"`
	IsSuperuser bool    `json:"is_superuser"`
	Role        string  `json:"role"`
	DateJoined  string  `json:"date_joined,omitempty"`
	LastLogin   *string `json:"last_login"`
}

// LoginResult is what a successful authentication hands back to the caller.
type LoginResult struct {
	Account     AccountResponse
	AccessToken string
	ExpiresAt   time.Time
}

type LoginResponse struct {
	Success     bool            `json:"success"`
	User        AccountResponse `json:"user"`
	AccessToken string          `json:"access_token"`
	ExpiresAt   string          `json:"expires_at"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ToAccountResponse(a *Account) AccountResponse {
	resp := AccountResponse{
		ID:          a.ID.String(),
		Username:    a.Username,
		Email:       a.Email,
		IsStaff:     a.IsStaff,
		IsSuperuser: a.IsSuperuser,
		Role:        a.Role(),
	}
	if !a.DateJoined.IsZero() {
		resp.DateJoined = a.DateJoined.Format(time.RFC3339)
	}
	if a.LastLogin != nil {
		s := a.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &s
	}
	return resp
}
