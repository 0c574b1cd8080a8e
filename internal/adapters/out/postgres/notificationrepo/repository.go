package notificationrepo

import (
	"context"
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add saves a new notification.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves read/relay mark changes of an existing notification.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"read_at":    dto.ReadAt,
			"relayed_at": dto.RelayedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notificationID", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a non-deleted notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notificationID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkAllRead stamps readAt on every unread notification of the owner.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, ownerID kernel.UUID, readAt time.Time) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("owner_id = ? AND read_at IS NULL", ownerID.Bytes()).
		Update("read_at", readAt).Error
}

// Delete soft-deletes one notification.
func (r *GormNotificationRepository) Delete(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&NotificationDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notificationID", aggregate.ID().String())
	}

	return nil
}

// DeleteAllByOwner soft-deletes every notification of the owner. Deleting
// from an empty feed is not an error.
func (r *GormNotificationRepository) DeleteAllByOwner(ctx context.Context, ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&NotificationDTO{}, "owner_id = ?", ownerID.Bytes()).Error
}

// GetAllUnrelayed retrieves pending notifications oldest first, capped at
// limit, so the relay drains the backlog in arrival order.
func (r *GormNotificationRepository) GetAllUnrelayed(ctx context.Context, limit int) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("relayed_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
