// Package notificationrepo persists user notifications. The payload captured
// at production time is flattened into columns so the read side can render
// a notification without joins.
package notificationrepo

import (
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents the database structure for notification rows.
// read_at and relayed_at are nullable timestamps; NULL means "not yet".
type NotificationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Type          string    `gorm:"not null"`
	Title         string    `gorm:"not null"`
	Message       string    `gorm:"not null"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Destination   string
	OldStatusName string
	NewStatusName string
	ReadAt        *time.Time `gorm:"index"`
	RelayedAt     *time.Time `gorm:"index"`
	CreatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	payload := aggregate.Payload()
	return NotificationDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		Type:          string(aggregate.Type()),
		Title:         aggregate.Title(),
		Message:       aggregate.Message(),
		OrderID:       payload.OrderID.Bytes(),
		Destination:   payload.Destination,
		OldStatusName: payload.OldStatusName,
		NewStatusName: payload.NewStatusName,
		ReadAt:        aggregate.ReadAt(),
		RelayedAt:     aggregate.RelayedAt(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		ownerID,
		notification.Type(dto.Type),
		dto.Title,
		dto.Message,
		notification.Payload{
			OrderID:       orderID,
			Destination:   dto.Destination,
			OldStatusName: dto.OldStatusName,
			NewStatusName: dto.NewStatusName,
		},
		dto.ReadAt,
		dto.RelayedAt,
		dto.CreatedAt,
	)
}
