package queries

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var (
	ErrUnreadNotificationCountQueryIsNotConstructed = errors.New(
		"UnreadNotificationCountQuery must be created via NewUnreadNotificationCountQuery constructor",
	)
)

// UnreadNotificationCountQuery retrieves the actor's unread notification
// count, typically polled for a badge in the UI.
type UnreadNotificationCountQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnreadNotificationCountQuery creates an unread-count query.
func NewUnreadNotificationCountQuery(actorID kernel.UUID) (UnreadNotificationCountQuery, error) {
	if err := actorID.Validate(); err != nil {
		return UnreadNotificationCountQuery{}, err
	}

	return UnreadNotificationCountQuery{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q UnreadNotificationCountQuery) Validate() error {
	return q.guard.Validate(ErrUnreadNotificationCountQueryIsNotConstructed)
}

// ActorID returns the identifier of the notifications' owner.
func (q UnreadNotificationCountQuery) ActorID() kernel.UUID {
	return q.actorID
}
