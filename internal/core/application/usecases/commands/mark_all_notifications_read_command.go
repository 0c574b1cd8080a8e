package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var (
	ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
		"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
	)
)

// MarkAllNotificationsReadCommand represents a request to mark every unread
// notification of the actor as read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a mark-all-read command.
func NewMarkAllNotificationsReadCommand(actorID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	if err := actorID.Validate(); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return MarkAllNotificationsReadCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// ActorID returns the identifier of the notifications' owner.
func (c MarkAllNotificationsReadCommand) ActorID() kernel.UUID {
	return c.actorID
}
