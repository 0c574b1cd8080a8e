// Package queries contains read-only operations implementing the query side
// of the CQRS architecture. Handlers bypass the domain model and read
// projections straight from the database with raw SQL; responses are plain
// read models shaped for the HTTP layer.
package queries

import "travelorders/internal/pkg/errs"

// Per-page defaults and the shared upper bound for paginated queries.
const (
	DefaultOrdersPerPage        = 10
	DefaultNotificationsPerPage = 15
	DefaultAuditEntriesPerPage  = 15
	MaxPerPage                  = 100
)

// normalizePagination applies defaults for unset page/perPage values and
// rejects a perPage beyond the shared bound. Zero means "use the default".
func normalizePagination(page, perPage, defaultPerPage int) (int, int, error) {
	if page < 0 {
		return 0, 0, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if page == 0 {
		page = 1
	}
	if perPage < 0 || perPage > MaxPerPage {
		return 0, 0, errs.NewValueIsOutOfRangeError("perPage", perPage, 1, MaxPerPage)
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}
	return page, perPage, nil
}
