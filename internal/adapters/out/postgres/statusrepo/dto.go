// Package statusrepo persists the status registry. Statuses are small
// reference rows; the interesting part is the unique name constraint that
// backs the registry's duplicate rule.
package statusrepo

import (
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusDTO represents the database structure for status rows. The unique
// index on name enforces registry-wide uniqueness at the storage level, so
// racing creations cannot both win.
type StatusDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	IsCustom  bool      `gorm:"not null"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming to use "order_statuses".
func (StatusDTO) TableName() string {
	return "order_statuses"
}

func fromDomain(aggregate *status.Status) StatusDTO {
	return StatusDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		IsCustom: aggregate.IsCustom(),
	}
}

func toDomain(dto StatusDTO) (*status.Status, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return status.RestoreStatus(id, dto.Name, dto.IsCustom)
}
