package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/guard"
)

var (
	ErrDeleteOrderStatusCommandIsNotConstructed = errors.New(
		"DeleteOrderStatusCommand must be created via NewDeleteOrderStatusCommand constructor",
	)
)

// DeleteOrderStatusCommand represents a request to remove a custom status
// from the registry.
type DeleteOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	statusID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderStatusCommand creates a status removal command.
func NewDeleteOrderStatusCommand(actorID, statusID kernel.UUID) (DeleteOrderStatusCommand, error) {
	if err := errors.Join(actorID.Validate(), statusID.Validate()); err != nil {
		return DeleteOrderStatusCommand{}, err
	}

	return DeleteOrderStatusCommand{
		actorID:  actorID,
		statusID: statusID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderStatusCommandIsNotConstructed)
}

// ActorID returns the identifier of the administrator removing the status.
func (c DeleteOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// StatusID returns the identifier of the status being removed.
func (c DeleteOrderStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}
