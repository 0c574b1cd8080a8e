package queries

import (
	"context"
	"database/sql"
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order row by identifier. A row the actor
// may not see is reported as forbidden, not as missing, matching the write
// side's behavior for the same order.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	users ports.UserDirectory
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB, users ports.UserDirectory) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, users: users}
}

// Handle executes the query. Soft-deleted orders read as not found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	actor, err := h.users.GetByID(ctx, query.ActorID())
	if err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ? AND o.deleted_at IS NULL
	`, query.OrderID().Bytes()).Row()

	var item OrderResponse
	var id, ownerID uuid.UUID

	err = row.Scan(
		&id,
		&ownerID,
		&item.RequesterName,
		&item.Destination,
		&item.DepartureDate,
		&item.ReturnDate,
		&item.StatusName,
		&item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if item.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return OrderResponse{}, err
	}

	if !actor.IsAdmin() && !item.OwnerID.IsEqual(actor.ID()) {
		return OrderResponse{}, errs.NewForbiddenError("view", "you can only view your own orders")
	}

	return item, nil
}
