package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to another
// status, addressed by the target status name as registered in the registry.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actorID    kernel.UUID
	orderID    kernel.UUID
	statusName string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status transition command.
func NewChangeOrderStatusCommand(
	actorID kernel.UUID,
	orderID kernel.UUID,
	statusName string,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(actorID.Validate(), orderID.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if statusName == "" {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("status name")
	}

	return ChangeOrderStatusCommand{
		actorID:    actorID,
		orderID:    orderID,
		statusName: statusName,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// ActorID returns the identifier of the administrator performing the change.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrderID returns the identifier of the order being transitioned.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StatusName returns the target status name.
func (c ChangeOrderStatusCommand) StatusName() string {
	return c.statusName
}
