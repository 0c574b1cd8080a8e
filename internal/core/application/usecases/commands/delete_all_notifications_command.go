package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var (
	ErrDeleteAllNotificationsCommandIsNotConstructed = errors.New(
		"DeleteAllNotificationsCommand must be created via NewDeleteAllNotificationsCommand constructor",
	)
)

// DeleteAllNotificationsCommand represents a request to clear the actor's
// entire notification feed.
type DeleteAllNotificationsCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAllNotificationsCommand creates a clear-feed command.
func NewDeleteAllNotificationsCommand(actorID kernel.UUID) (DeleteAllNotificationsCommand, error) {
	if err := actorID.Validate(); err != nil {
		return DeleteAllNotificationsCommand{}, err
	}

	return DeleteAllNotificationsCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAllNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAllNotificationsCommandIsNotConstructed)
}

// ActorID returns the identifier of the notifications' owner.
func (c DeleteAllNotificationsCommand) ActorID() kernel.UUID {
	return c.actorID
}
