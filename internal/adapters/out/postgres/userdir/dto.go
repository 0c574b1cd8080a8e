// Package userdir reads users from the shared users table. The workflow only
// resolves actors and owners; user provisioning belongs to the surrounding
// platform, so this adapter is read-only.
package userdir

import (
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user rows.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex"`
	IsAdmin   bool      `gorm:"not null"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.IsAdmin)
}
