package queries

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrderStatusesQueryHandler retrieves the status registry contents.
// Built-ins sort before custom statuses, each group alphabetically.
type ListOrderStatusesQueryHandler struct {
	db *gorm.DB
}

// NewListOrderStatusesQueryHandler creates a handler for status list queries.
func NewListOrderStatusesQueryHandler(db *gorm.DB) ListOrderStatusesQueryHandler {
	return ListOrderStatusesQueryHandler{db: db}
}

// Handle executes the query. Soft-deleted custom statuses are excluded.
func (h ListOrderStatusesQueryHandler) Handle(
	ctx context.Context,
	query ListOrderStatusesQuery,
) ([]StatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]StatusResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			is_custom
		FROM order_statuses
		WHERE deleted_at IS NULL
		ORDER BY is_custom, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var statusResp StatusResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&statusResp.Name,
			&statusResp.IsCustom,
		)
		if err != nil {
			return nil, err
		}

		if statusResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		statuses = append(statuses, statusResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
