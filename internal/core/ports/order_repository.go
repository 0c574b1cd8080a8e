// Package ports defines the persistence and collaborator contracts consumed
// by the application layer. Adapters implement them; handlers depend on them.
package ports

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All reads exclude soft-deleted orders unless the method name says otherwise.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is guarded by
	// the aggregate's optimistic-lock version: when the stored row has moved
	// on since the aggregate was loaded, Update fails with a ConflictError
	// and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a non-deleted order by its identifier.
	// Returns ObjectNotFoundError when absent or soft-deleted.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetIncludingDeleted retrieves an order regardless of its soft-delete
	// state. Used by administrative tooling, never by the lifecycle.
	GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete soft-deletes the order. The row is retained and excluded from
	// regular queries; orders are never hard-deleted.
	Delete(ctx context.Context, aggregate *order.Order) error
}
