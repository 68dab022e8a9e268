package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:uq_departments_name"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// DepartmentWithCount is a department row plus the number of users
// currently assigned to it.
type DepartmentWithCount struct {
	Department `gorm:"embedded"`
	UserCount  int64 `gorm:"column:user_count"`
}
