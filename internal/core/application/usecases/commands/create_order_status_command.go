package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrCreateOrderStatusCommandIsNotConstructed = errors.New(
		"CreateOrderStatusCommand must be created via NewCreateOrderStatusCommand constructor",
	)
)

// CreateOrderStatusCommand represents a request to register a custom status
// in the registry. Registering statuses is an administrator capability.
type CreateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateOrderStatusCommand creates a status registration command.
func NewCreateOrderStatusCommand(actorID kernel.UUID, name string) (CreateOrderStatusCommand, error) {
	if err := actorID.Validate(); err != nil {
		return CreateOrderStatusCommand{}, err
	}
	if name == "" {
		return CreateOrderStatusCommand{}, errs.NewValueIsRequiredError("status name")
	}

	return CreateOrderStatusCommand{
		actorID: actorID,
		name:    name,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderStatusCommandIsNotConstructed)
}

// ActorID returns the identifier of the administrator registering the status.
func (c CreateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the name of the status being registered.
func (c CreateOrderStatusCommand) Name() string {
	return c.name
}
