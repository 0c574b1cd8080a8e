package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var (
	ErrDeleteNotificationCommandIsNotConstructed = errors.New(
		"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
	)
)

// DeleteNotificationCommand represents a request to remove one notification
// from the actor's feed.
type DeleteNotificationCommand struct { //nolint:recvcheck //using for validation
	actorID        kernel.UUID
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteNotificationCommand creates a notification delete command.
func NewDeleteNotificationCommand(actorID, notificationID kernel.UUID) (DeleteNotificationCommand, error) {
	if err := errors.Join(actorID.Validate(), notificationID.Validate()); err != nil {
		return DeleteNotificationCommand{}, err
	}

	return DeleteNotificationCommand{
		actorID:        actorID,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

// ActorID returns the identifier of the notification's owner.
func (c DeleteNotificationCommand) ActorID() kernel.UUID {
	return c.actorID
}

// NotificationID returns the identifier of the notification being deleted.
func (c DeleteNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}
