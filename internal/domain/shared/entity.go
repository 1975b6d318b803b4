package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides common fields for all entities.
// Records in this system are immutable after creation, so there is no
// update timestamp.
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}
