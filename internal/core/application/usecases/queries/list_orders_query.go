package queries

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersFilter carries the optional list filters. Zero values mean "no
// filter": an empty status name matches every status, an empty destination
// fragment matches every destination, nil dates leave the departure window
// open on that side.
type ListOrdersFilter struct {
	StatusName          string
	DestinationContains string
	DepartureFrom       *time.Time
	DepartureTo         *time.Time
}

// ListOrdersQuery retrieves a page of travel orders visible to the actor.
// Regular users see only their own orders; administrators see everyone's.
//
// Example:
//
//	query, _ := NewListOrdersQuery(actorID, ListOrdersFilter{StatusName: "requested"}, 1, 0)
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	filter  ListOrdersFilter
	page    int
	perPage int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a list query. page and perPage of zero select
// the defaults (first page, DefaultOrdersPerPage items).
func NewListOrdersQuery(actorID kernel.UUID, filter ListOrdersFilter, page, perPage int) (ListOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if filter.DepartureFrom != nil && filter.DepartureTo != nil &&
		filter.DepartureTo.Before(*filter.DepartureFrom) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("departure window")
	}

	page, perPage, err := normalizePagination(page, perPage, DefaultOrdersPerPage)
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actorID: actorID,
		filter:  filter,
		page:    page,
		perPage: perPage,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ActorID returns the identifier of the requesting user.
func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Filter returns the list filters.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q ListOrdersQuery) PerPage() int {
	return q.perPage
}

// OrderResponse is the read model for one order row.
type OrderResponse struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	RequesterName string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	StatusName    string
	CreatedAt     time.Time
}

// ListOrdersQueryResponse is one page of orders plus the total match count.
type ListOrdersQueryResponse struct {
	Items   []OrderResponse
	Total   int64
	Page    int
	PerPage int
}
