package queries

import (
	"context"
	"strings"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order pages from the database with raw
// SQL. Visibility scoping happens here: the actor is resolved once and the
// owner filter is added for non-administrators, so a regular user can never
// page through someone else's orders.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db, users)
//	query, _ := NewListOrdersQuery(actorID, ListOrdersFilter{}, 1, 0)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type ListOrdersQueryHandler struct {
	db    *gorm.DB
	users ports.UserDirectory
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(db *gorm.DB, users ports.UserDirectory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, users: users}
}

// Handle executes the list query. Results are sorted newest first; the
// destination filter is a case-insensitive substring match and the departure
// window is inclusive on both ends.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	actor, err := h.users.GetByID(ctx, query.ActorID())
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := buildOrderFilters(query, actor.IsAdmin())

	var total int64
	countSQL := `
		SELECT count(*)
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		WHERE ` + where
	if err = h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	pageSQL := `
		SELECT
			o.id,
			o.owner_id,
			o.requester_name,
			o.destination,
			o.departure_date,
			o.return_date,
			s.name,
			o.created_at
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		WHERE ` + where + `
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?`
	pageArgs := append(args, query.PerPage(), (query.Page()-1)*query.PerPage())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]OrderResponse, 0)
	for rows.Next() {
		var item OrderResponse
		var id, ownerID uuid.UUID

		err = rows.Scan(
			&id,
			&ownerID,
			&item.RequesterName,
			&item.Destination,
			&item.DepartureDate,
			&item.ReturnDate,
			&item.StatusName,
			&item.CreatedAt,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if item.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Items:   items,
		Total:   total,
		Page:    query.Page(),
		PerPage: query.PerPage(),
	}, nil
}

// buildOrderFilters assembles the shared WHERE clause for the count and page
// queries. Soft-deleted orders are always excluded.
func buildOrderFilters(query ListOrdersQuery, isAdmin bool) (string, []any) {
	conditions := []string{"o.deleted_at IS NULL"}
	args := make([]any, 0)

	if !isAdmin {
		conditions = append(conditions, "o.owner_id = ?")
		args = append(args, query.ActorID().Bytes())
	}

	filter := query.Filter()
	if filter.StatusName != "" {
		conditions = append(conditions, "s.name = ?")
		args = append(args, filter.StatusName)
	}
	if filter.DestinationContains != "" {
		conditions = append(conditions, "o.destination ILIKE ?")
		args = append(args, "%"+filter.DestinationContains+"%")
	}
	if filter.DepartureFrom != nil {
		conditions = append(conditions, "o.departure_date >= ?")
		args = append(args, *filter.DepartureFrom)
	}
	if filter.DepartureTo != nil {
		conditions = append(conditions, "o.departure_date <= ?")
		args = append(args, *filter.DepartureTo)
	}

	return strings.Join(conditions, " AND "), args
}
