package order

import (
	"errors"
	"fmt"
	"time"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a travel request submitted by a user. It is the aggregate
// root that owns the lifecycle from creation through approval or cancellation.
//
// Order maintains these invariants:
//   - has valid order and owner identifiers
//   - requester name is a snapshot of the owner's display name at creation
//     time and is never recomputed
//   - destination is non-empty
//   - the travel period's return date is never before the departure date,
//     at creation and after every edit
//   - status transitions follow the lifecycle rules (see ChangeStatus)
//
// The struct uses private fields so the invariants can only be touched
// through validated methods.
type Order struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	requesterName string
	destination   string
	period        kernel.TravelPeriod

	// current status, a value copy of the registry entity
	currentStatus status.Status

	// version supports the store's optimistic locking; it is set when the
	// aggregate is restored and never changed in memory
	version int

	createdAt time.Time

	events []DomainEvent

	isConstructed bool
}

// NewOrder creates a new travel order in the "requested" status.
//
// requesterName is the owner's display name at the moment of creation; the
// caller resolves it from the user directory. requested must be the
// registry's "requested" status entity, so the order carries its identifier.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	requesterName string,
	destination string,
	period kernel.TravelPeriod,
	requested *status.Status,
	createdAt time.Time,
) (*Order, error) {
	if err := requested.Validate(); err != nil {
		return nil, err
	}
	if requested.Name() != status.RequestedName {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"initial status",
			fmt.Errorf("orders start in %q, not %q", status.RequestedName, requested.Name()),
		)
	}

	o := &Order{
		currentStatus: *requested,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setRequesterName(requesterName),
		o.setDestination(destination),
		o.setPeriod(period),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its stored
// optimistic-lock version.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	requesterName string,
	destination string,
	period kernel.TravelPeriod,
	current *status.Status,
	version int,
	createdAt time.Time,
) (*Order, error) {
	if err := current.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		currentStatus: *current,
		version:       version,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setRequesterName(requesterName),
		o.setDestination(destination),
		o.setPeriod(period),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user the order belongs to.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// IsOwnedBy reports whether the order belongs to the given user.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// RequesterName returns the owner's display name snapshotted at creation.
func (o *Order) RequesterName() string {
	return o.requesterName
}

// Destination returns the travel destination.
func (o *Order) Destination() string {
	return o.destination
}

// Period returns the departure/return date range.
func (o *Order) Period() kernel.TravelPeriod {
	return o.period
}

// Status returns the current status.
func (o *Order) Status() *status.Status {
	return &o.currentStatus
}

// Version returns the optimistic-lock version loaded from the store.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ChangeStatus moves the order to target, enforcing the lifecycle rules:
//
//   - a cancelled order accepts no transition at all
//   - an approved order accepts no transition at all; the attempt to cancel
//     it gets its own display message
//   - from "requested" any known status is a legal target, including a
//     custom status or "requested" itself
//
// Authorization (admin-only, never on the actor's own order) is the access
// policy's concern, not the aggregate's.
//
// On success a StatusChanged event is appended to the aggregate.
func (o *Order) ChangeStatus(target *status.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	from := o.currentStatus.Name()
	to := target.Name()

	switch from {
	case status.CancelledName:
		return errs.NewInvalidTransitionError(from, to,
			"cannot change status of a cancelled order")
	case status.ApprovedName:
		if to == status.CancelledName {
			return errs.NewInvalidTransitionError(from, to,
				"cannot cancel an already-approved order")
		}
		return errs.NewInvalidTransitionError(from, to,
			"cannot change status of an approved order")
	}

	o.currentStatus = *target
	o.events = append(o.events, StatusChanged{
		OrderID:       o.id,
		OwnerID:       o.ownerID,
		Destination:   o.destination,
		OldStatusName: from,
		NewStatusName: to,
	})

	return nil
}

// ChangeDetails applies an edit to the order's mutable fields. Callers merge
// a partial patch against the current values first, so the date invariant is
// validated on the final state via the TravelPeriod construction.
//
// Status gating (who may edit an approved or cancelled order) is the access
// policy's concern.
func (o *Order) ChangeDetails(destination string, period kernel.TravelPeriod) error {
	if err := errors.Join(
		o.setDestination(destination),
		o.setPeriod(period),
	); err != nil {
		return err
	}
	return nil
}

// Events returns the domain events accumulated by lifecycle operations since
// the aggregate was constructed or last cleared.
func (o *Order) Events() []DomainEvent {
	return o.events
}

// ClearEvents discards accumulated events. The application layer calls it
// after routing the events to their consumers.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setRequesterName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("requester name")
	}
	o.requesterName = name
	return nil
}

func (o *Order) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

func (o *Order) setPeriod(period kernel.TravelPeriod) error {
	if err := period.Validate(); err != nil {
		return err
	}
	o.period = period
	return nil
}
