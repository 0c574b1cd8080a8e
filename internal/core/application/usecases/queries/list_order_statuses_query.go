package queries

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var (
	ErrListOrderStatusesQueryIsNotConstructed = errors.New(
		"ListOrderStatusesQuery must be created via NewListOrderStatusesQuery constructor",
	)
)

// ListOrderStatusesQuery retrieves every registered status, built-in and
// custom. Any authenticated user may list statuses; only mutations are
// restricted to administrators.
type ListOrderStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrderStatusesQuery creates a status list query.
func NewListOrderStatusesQuery() ListOrderStatusesQuery {
	return ListOrderStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrderStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListOrderStatusesQueryIsNotConstructed)
}

// StatusResponse is the read model for one status row.
type StatusResponse struct {
	ID       kernel.UUID
	Name     string
	IsCustom bool
}
