package user

import (
	"strings"
	"time"

	"go-hrm/internal/department"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

// Statuses lists every legal status in display order.
var Statuses = []Status{StatusActive, StatusInactive, StatusOnLeave}

// ParseStatus accepts only the three enumerated values.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// User is an employee record on the HR roster. It is not a login account.
type User struct {
	ID             uuid.UUID              `gorm:"type:uuid;primaryKey"`
	FirstName      string                 `gorm:"size:100;not null"`
	LastName       string                 `gorm:"size:100;not null"`
	Email          string                 `gorm:"size:254;not null;uniqueIndex:uq_users_email"`
	Phone          string                 `gorm:"size:20"`
	DateOfBirth    *time.Time             `gorm:"type:date"`
	Gender         string                 `gorm:"size:1"`
	Address        string                 `gorm:"type:text"`
	City           string                 `gorm:"size:100"`
	State          string                 `gorm:"size:100"`
	Country        string                 `gorm:"size:100"`
	PostalCode     string                 `gorm:"size:20"`
	DepartmentID   *uuid.UUID             `gorm:"type:uuid;index"`
	Department     *department.Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
	Position       string                 `gorm:"size:100"`
	EmployeeID     *string                `gorm:"size:50;uniqueIndex:uq_users_employee_id"`
	HireDate       *time.Time             `gorm:"type:date"`
	Salary         *float64               `gorm:"type:numeric(12,2)"`
	Status         Status                 `gorm:"size:20;not null;default:active"`
	ProfilePicture string                 `gorm:"size:255"`
	Bio            string                 `gorm:"type:text"`
	CreatedAt      time.Time              `gorm:"autoCreateTime"`
	UpdatedAt      time.Time              `gorm:"autoUpdateTime"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
