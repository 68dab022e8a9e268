package rbac

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type PermissionsResponse struct {
	Role        string               `json:"role"`
	Permissions []PermissionResponse `json:"permissions"`
}
