package ports

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/status"
)

// StatusRepository defines the persistence contract for the status registry.
type StatusRepository interface {
	// Add persists a new status. Fails with a DuplicateNameError when a
	// status with the same name already exists (case-sensitive exact match).
	Add(ctx context.Context, aggregate *status.Status) error

	// Get retrieves a non-deleted status by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*status.Status, error)

	// GetByName retrieves a non-deleted status by exact name.
	// Returns ObjectNotFoundError when no such status exists.
	GetByName(ctx context.Context, name string) (*status.Status, error)

	// GetAll retrieves all non-deleted statuses. Callers sort or filter as
	// needed; no ordering is guaranteed.
	GetAll(ctx context.Context) ([]*status.Status, error)

	// Delete soft-deletes a custom status. Protection of built-ins is the
	// domain's rule; the repository just performs the delete.
	Delete(ctx context.Context, aggregate *status.Status) error
}
