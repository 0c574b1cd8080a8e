package queries

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrListAuditEntriesQueryIsNotConstructed = errors.New(
		"ListAuditEntriesQuery must be created via NewListAuditEntriesQuery constructor",
	)
)

// ListAuditEntriesFilter carries the optional audit trail filters. Zero
// values mean "no filter".
type ListAuditEntriesFilter struct {
	Action      string
	SubjectType string
	ActorID     *kernel.UUID
	From        *time.Time
	To          *time.Time
}

// ListAuditEntriesQuery retrieves a page of the audit trail. Reading the
// trail is an administrator capability.
type ListAuditEntriesQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	filter  ListAuditEntriesFilter
	page    int
	perPage int

	guard guard.ConstructorGuard
}

// NewListAuditEntriesQuery creates an audit list query. page and perPage of
// zero select the defaults.
func NewListAuditEntriesQuery(
	actorID kernel.UUID,
	filter ListAuditEntriesFilter,
	page, perPage int,
) (ListAuditEntriesQuery, error) {
	if err := actorID.Validate(); err != nil {
		return ListAuditEntriesQuery{}, err
	}
	if filter.ActorID != nil {
		if err := filter.ActorID.Validate(); err != nil {
			return ListAuditEntriesQuery{}, err
		}
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return ListAuditEntriesQuery{}, errs.NewValueIsInvalidError("time window")
	}

	page, perPage, err := normalizePagination(page, perPage, DefaultAuditEntriesPerPage)
	if err != nil {
		return ListAuditEntriesQuery{}, err
	}

	return ListAuditEntriesQuery{
		actorID: actorID,
		filter:  filter,
		page:    page,
		perPage: perPage,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAuditEntriesQuery) Validate() error {
	return q.guard.Validate(ErrListAuditEntriesQueryIsNotConstructed)
}

// ActorID returns the identifier of the requesting administrator.
func (q ListAuditEntriesQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Filter returns the audit filters.
func (q ListAuditEntriesQuery) Filter() ListAuditEntriesFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q ListAuditEntriesQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q ListAuditEntriesQuery) PerPage() int {
	return q.perPage
}

// AuditEntryResponse is the read model for one audit row. Properties is the
// raw JSON snapshot as stored.
type AuditEntryResponse struct {
	ID          kernel.UUID
	ActorID     kernel.UUID
	SubjectType string
	SubjectID   kernel.UUID
	Action      string
	Properties  map[string]any
	CreatedAt   time.Time
}

// ListAuditEntriesQueryResponse is one page of audit entries plus the total
// match count.
type ListAuditEntriesQueryResponse struct {
	Items   []AuditEntryResponse
	Total   int64
	Page    int
	PerPage int
}
