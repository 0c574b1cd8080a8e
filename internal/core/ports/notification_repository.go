package ports

import (
	"context"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for user-scoped
// notifications. All reads exclude soft-deleted records.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification (read/relay marks).
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a non-deleted notification by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// MarkAllRead stamps readAt on every unread notification of the owner.
	// Already-read rows are untouched, making the operation idempotent.
	MarkAllRead(ctx context.Context, ownerID kernel.UUID, readAt time.Time) error

	// Delete soft-deletes one notification.
	Delete(ctx context.Context, aggregate *notification.Notification) error

	// DeleteAllByOwner soft-deletes every notification of the owner.
	DeleteAllByOwner(ctx context.Context, ownerID kernel.UUID) error

	// GetAllUnrelayed retrieves notifications whose external message has not
	// been sent yet, oldest first, capped at limit.
	GetAllUnrelayed(ctx context.Context, limit int) ([]*notification.Notification, error)
}
