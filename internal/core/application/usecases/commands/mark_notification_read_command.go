package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var (
	ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
		"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
	)
)

// MarkNotificationReadCommand represents a request to mark one notification
// as read. Notifications are strictly owner-scoped; administrators get no
// special access to other users' notifications.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	actorID        kernel.UUID
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a mark-read command.
func NewMarkNotificationReadCommand(actorID, notificationID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := errors.Join(actorID.Validate(), notificationID.Validate()); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return MarkNotificationReadCommand{
		actorID:        actorID,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// ActorID returns the identifier of the notification's owner.
func (c MarkNotificationReadCommand) ActorID() kernel.UUID {
	return c.actorID
}

// NotificationID returns the identifier of the notification being marked.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}
