package position

import (
	"time"

	"github.com/google/uuid"
)

// Position is the catalog of job titles. Users carry their position as free
// text and are not linked to this table.
type Position struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:100;not null;uniqueIndex:uq_positions_title"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
