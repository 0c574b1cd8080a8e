package ports

import (
	"context"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/user"
)

// UserDirectory resolves users for actor identification and owner lookup.
// The workflow core never mutates users; user management lives outside the
// system boundary.
type UserDirectory interface {
	// GetByID retrieves a user by identifier.
	// Returns ObjectNotFoundError when no such user exists.
	GetByID(ctx context.Context, id kernel.UUID) (*user.User, error)
}
