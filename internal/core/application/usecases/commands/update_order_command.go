package commands

import (
	"errors"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial edit of an order's mutable fields.
// Omitted fields keep their stored values; the handler merges the patch
// against the current state before validating the date invariant.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID kernel.UUID

	destination   *string
	departureDate *time.Time
	returnDate    *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an edit command. Nil patch fields mean "keep
// the current value"; a command with every field nil is rejected because it
// would be a no-op.
func NewUpdateOrderCommand(
	actorID kernel.UUID,
	orderID kernel.UUID,
	destination *string,
	departureDate, returnDate *time.Time,
) (UpdateOrderCommand, error) {
	if err := errors.Join(actorID.Validate(), orderID.Validate()); err != nil {
		return UpdateOrderCommand{}, err
	}
	if destination == nil && departureDate == nil && returnDate == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("at least one field to update")
	}
	if destination != nil && *destination == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("destination")
	}

	return UpdateOrderCommand{
		actorID:       actorID,
		orderID:       orderID,
		destination:   destination,
		departureDate: departureDate,
		returnDate:    returnDate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// ActorID returns the identifier of the user performing the edit.
func (c UpdateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrderID returns the identifier of the order being edited.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Destination returns the new destination, or nil to keep the current one.
func (c UpdateOrderCommand) Destination() *string {
	return c.destination
}

// DepartureDate returns the new departure date, or nil to keep the current one.
func (c UpdateOrderCommand) DepartureDate() *time.Time {
	return c.departureDate
}

// ReturnDate returns the new return date, or nil to keep the current one.
func (c UpdateOrderCommand) ReturnDate() *time.Time {
	return c.returnDate
}
