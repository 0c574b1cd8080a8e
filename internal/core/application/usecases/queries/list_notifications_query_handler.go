package queries

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler retrieves notification pages for their owner,
// newest first. Scoping is structural: the owner condition is part of every
// statement, so there is no cross-user access to forbid.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for notification list
// queries.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the list query.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) (ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	where := "owner_id = ? AND deleted_at IS NULL"
	if query.UnreadOnly() {
		where += " AND read_at IS NULL"
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT count(*) FROM notifications WHERE "+where, query.ActorID().Bytes()).
		Scan(&total).Error
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			title,
			message,
			order_id,
			destination,
			old_status_name,
			new_status_name,
			read_at,
			created_at
		FROM notifications
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.ActorID().Bytes(), query.PerPage(), (query.Page()-1)*query.PerPage()).Rows()
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]NotificationResponse, 0)
	for rows.Next() {
		var item NotificationResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&item.Type,
			&item.Title,
			&item.Message,
			&orderID,
			&item.Destination,
			&item.OldStatusName,
			&item.NewStatusName,
			&item.ReadAt,
			&item.CreatedAt,
		)
		if err != nil {
			return ListNotificationsQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListNotificationsQueryResponse{}, err
		}
		if item.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return ListNotificationsQueryResponse{}, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	return ListNotificationsQueryResponse{
		Items:   items,
		Total:   total,
		Page:    query.Page(),
		PerPage: query.PerPage(),
	}, nil
}
