package queries

import (
	"context"

	"gorm.io/gorm"
)

// UnreadNotificationCountQueryHandler counts the actor's unread, non-deleted
// notifications.
type UnreadNotificationCountQueryHandler struct {
	db *gorm.DB
}

// NewUnreadNotificationCountQueryHandler creates a handler for unread-count
// queries.
func NewUnreadNotificationCountQueryHandler(db *gorm.DB) UnreadNotificationCountQueryHandler {
	return UnreadNotificationCountQueryHandler{db: db}
}

// Handle executes the count query.
func (h UnreadNotificationCountQueryHandler) Handle(
	ctx context.Context,
	query UnreadNotificationCountQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM notifications
		WHERE owner_id = ? AND read_at IS NULL AND deleted_at IS NULL
	`, query.ActorID().Bytes()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
