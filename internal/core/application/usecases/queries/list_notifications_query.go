package queries

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var (
	ErrListNotificationsQueryIsNotConstructed = errors.New(
		"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
	)
)

// ListNotificationsQuery retrieves a page of the actor's own notifications,
// optionally restricted to unread ones.
type ListNotificationsQuery struct { //nolint:recvcheck //using for validation
	actorID    kernel.UUID
	unreadOnly bool
	page       int
	perPage    int

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a notification list query. page and
// perPage of zero select the defaults.
func NewListNotificationsQuery(actorID kernel.UUID, unreadOnly bool, page, perPage int) (ListNotificationsQuery, error) {
	if err := actorID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}

	page, perPage, err := normalizePagination(page, perPage, DefaultNotificationsPerPage)
	if err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		actorID:    actorID,
		unreadOnly: unreadOnly,
		page:       page,
		perPage:    perPage,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// ActorID returns the identifier of the notifications' owner.
func (q ListNotificationsQuery) ActorID() kernel.UUID {
	return q.actorID
}

// UnreadOnly reports whether read notifications are excluded.
func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// Page returns the 1-based page number.
func (q ListNotificationsQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q ListNotificationsQuery) PerPage() int {
	return q.perPage
}

// NotificationResponse is the read model for one notification row.
type NotificationResponse struct {
	ID            kernel.UUID
	Type          string
	Title         string
	Message       string
	OrderID       kernel.UUID
	Destination   string
	OldStatusName string
	NewStatusName string
	ReadAt        *time.Time
	CreatedAt     time.Time
}

// ListNotificationsQueryResponse is one page of notifications plus the total
// match count.
type ListNotificationsQueryResponse struct {
	Items   []NotificationResponse
	Total   int64
	Page    int
	PerPage int
}
