package admin

type CreateAdminRequest struct {
	Username    string `json:"username" binding:"max=150"`
	Email       string `json:"email" binding:"omitempty,email,max=254"`
	Password    string `json:"password"`
	IsSuperuser bool   `json:"is_superuser"`
}

type ChangeUserPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

type AdminResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	IsSuperuser bool    `json:"is_superuser"`
	DateJoined  string  `json:"date_joined"`
	LastLogin   *string `json:"last_login"`
}

type AdminSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

type CreateAdminResponse struct {
	Success bool         `json:"success"`
	User    AdminSummary `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
