package rbac

import "go-hrm/internal/domain"

const (
	ResourceUser       = "user"
	ResourceDepartment = "department"
	ResourcePosition   = "position"
	ResourceStatistics = "statistics"
	ResourceAdmin      = "admin"
	ResourceAccount    = "account"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionManage = "manage"
)

type Policy struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicies: admins may do anything, regular accounts may read the
// roster and manage their own credentials.
func DefaultPolicies() []Policy {
	return []Policy{
		{Role: domain.RoleAdmin, Resource: "*", Action: "*"},

		{Role: domain.RoleUser, Resource: ResourceUser, Action: ActionRead},
		{Role: domain.RoleUser, Resource: ResourceDepartment, Action: ActionRead},
		{Role: domain.RoleUser, Resource: ResourcePosition, Action: ActionRead},
		{Role: domain.RoleUser, Resource: ResourceStatistics, Action: ActionRead},
		{Role: domain.RoleUser, Resource: ResourceAccount, Action: ActionManage},
	}
}
