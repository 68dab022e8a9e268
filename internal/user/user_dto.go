package user

type CreateUserRequest struct {
	FirstName      string   `json:"first_name" binding:"required,max=100"`
	LastName       string   `json:"last_name" binding:"required,max=100"`
	Email          string   `json:"email" binding:"required,email,max=254"`
	Phone          string   `json:"phone" binding:"max=20"`
	DateOfBirth    string   `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender         string   `json:"gender" binding:"omitempty,oneof=M F O"`
	Address        string   `json:"address"`
	City           string   `json:"city" binding:"max=100"`
	State          string   `json:"state" binding:"max=100"`
	Country        string   `json:"country" binding:"max=100"`
	PostalCode     string   `json:"postal_code" binding:"max=20"`
	DepartmentID   string   `json:"department_id" binding:"omitempty,uuid"`
	Position       string   `json:"position" binding:"max=100"`
	EmployeeID     string   `json:"employee_id" binding:"max=50"`
	HireDate       string   `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	Salary         *float64 `json:"salary" binding:"omitempty,gte=0"`
	Status         string   `json:"status"`
	ProfilePicture string   `json:"profile_picture" binding:"max=255"`
	Bio            string   `json:"bio"`
}

// UpdateUserRequest is the PUT body. Names and email are always written;
// empty optional fields and an empty status keep the stored values.
type UpdateUserRequest CreateUserRequest

func (r UpdateUserRequest) asPatch() PatchUserRequest {
	return PatchUserRequest{
		FirstName:      &r.FirstName,
		LastName:       &r.LastName,
		Email:          &r.Email,
		Phone:          nonEmpty(r.Phone),
		DateOfBirth:    nonEmpty(r.DateOfBirth),
		Gender:         nonEmpty(r.Gender),
		Address:        nonEmpty(r.Address),
		City:           nonEmpty(r.City),
		State:          nonEmpty(r.State),
		Country:        nonEmpty(r.Country),
		PostalCode:     nonEmpty(r.PostalCode),
		DepartmentID:   nonEmpty(r.DepartmentID),
		Position:       nonEmpty(r.Position),
		EmployeeID:     nonEmpty(r.EmployeeID),
		HireDate:       nonEmpty(r.HireDate),
		Salary:         r.Salary,
		Status:         nonEmpty(r.Status),
		ProfilePicture: nonEmpty(r.ProfilePicture),
		Bio:            nonEmpty(r.Bio),
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// PatchUserRequest only touches the fields that are present.
type PatchUserRequest struct {
	FirstName      *string  `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName       *string  `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email          *string  `json:"email" binding:"omitempty,email,max=254"`
	Phone          *string  `json:"phone" binding:"omitempty,max=20"`
	DateOfBirth    *string  `json:"date_of_birth" binding:"omitempty"`
	Gender         *string  `json:"gender" binding:"omitempty"`
	Address        *string  `json:"address"`
	City           *string  `json:"city" binding:"omitempty,max=100"`
	State          *string  `json:"state" binding:"omitempty,max=100"`
	Country        *string  `json:"country" binding:"omitempty,max=100"`
	PostalCode     *string  `json:"postal_code" binding:"omitempty,max=20"`
	DepartmentID   *string  `json:"department_id"`
	Position       *string  `json:"position" binding:"omitempty,max=100"`
	EmployeeID     *string  `json:"employee_id" binding:"omitempty,max=50"`
	HireDate       *string  `json:"hire_date"`
	Salary         *float64 `json:"salary" binding:"omitempty,gte=0"`
	Status         *string  `json:"status"`
	ProfilePicture *string  `json:"profile_picture" binding:"omitempty,max=255"`
	Bio            *string  `json:"bio"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type UserResponse struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	DateOfBirth    string   `json:"date_of_birth,omitempty"`
	Gender         string   `json:"gender"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Country        string   `json:"country"`
	PostalCode     string   `json:"postal_code"`
	DepartmentID   string   `json:"department_id,omitempty"`
	DepartmentName string   `json:"department_name,omitempty"`
	Position       string   `json:"position"`
	EmployeeID     string   `json:"employee_id,omitempty"`
	HireDate       string   `json:"hire_date,omitempty"`
	Salary         *float64 `json:"salary,omitempty"`
	Status         string   `json:"status"`
	ProfilePicture string   `json:"profile_picture,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}
