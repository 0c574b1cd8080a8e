package commands

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to submit a new travel order.
// The order is created for the actor themselves unless a target owner is
// given; targeting another user is an administrator capability.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actorID, "São Paulo", departure, returning)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	ownerID     kernel.UUID // zero value means "the actor themselves"
	destination string
	period      kernel.TravelPeriod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command for an order owned by the actor.
// Validates the actor ID, the destination, and the date invariant
// (return date must not precede departure date).
func NewCreateOrderCommand(
	actorID kernel.UUID,
	destination string,
	departureDate, returnDate time.Time,
) (CreateOrderCommand, error) {
	return newCreateOrderCommand(actorID, kernel.UUID{}, destination, departureDate, returnDate)
}

// NewCreateOrderCommandForUser creates a command for an order owned by
// another user. Only administrators may create orders on behalf of others;
// the handler enforces that rule.
func NewCreateOrderCommandForUser(
	actorID kernel.UUID,
	ownerID kernel.UUID,
	destination string,
	departureDate, returnDate time.Time,
) (CreateOrderCommand, error) {
	if err := ownerID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	return newCreateOrderCommand(actorID, ownerID, destination, departureDate, returnDate)
}

func newCreateOrderCommand(
	actorID kernel.UUID,
	ownerID kernel.UUID,
	destination string,
	departureDate, returnDate time.Time,
) (CreateOrderCommand, error) {
	if err := actorID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if destination == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("destination")
	}

	period, err := kernel.NewTravelPeriod(departureDate, returnDate)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		actorID:     actorID,
		ownerID:     ownerID,
		destination: destination,
		period:      period,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ActorID returns the identifier of the user submitting the order.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OwnerID returns the target owner, or the zero UUID when the order is for
// the actor themselves.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// HasTargetOwner reports whether the command targets another user.
func (c CreateOrderCommand) HasTargetOwner() bool {
	return c.ownerID.Validate() == nil
}

// Destination returns the travel destination.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// Period returns the validated departure/return date range.
func (c CreateOrderCommand) Period() kernel.TravelPeriod {
	return c.period
}
