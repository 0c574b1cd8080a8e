// Package orderrepo persists the order aggregate. Rows carry an optimistic
// locking version and a soft-delete mark: deleted orders stay on disk for the
// audit trail but vanish from regular reads.
package orderrepo

import (
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for order rows. The status is a
// foreign reference into order_statuses; the version column backs the
// optimistic lock.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index;not null"`
	RequesterName string    `gorm:"not null"`
	Destination   string    `gorm:"not null"`
	DepartureDate time.Time `gorm:"type:date;index"`
	ReturnDate    time.Time `gorm:"type:date"`
	StatusID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Version       int       `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		RequesterName: aggregate.RequesterName(),
		Destination:   aggregate.Destination(),
		DepartureDate: aggregate.Period().Departure(),
		ReturnDate:    aggregate.Period().Return(),
		StatusID:      aggregate.Status().ID().Bytes(),
		Version:       aggregate.Version(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO, current *status.Status) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewTravelPeriod(dto.DepartureDate, dto.ReturnDate)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		ownerID,
		dto.RequesterName,
		dto.Destination,
		period,
		current,
		dto.Version,
		dto.CreatedAt,
	)
}
