package commands

import (
	"context"

	"travelorders/internal/core/domain/model/audit"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/core/ports"
)

// UpdateOrderCommandHandler handles partial edits of an order's destination
// and travel dates. The access policy gates who may edit and in which
// statuses; the merged result is re-validated against the date invariant
// before anything is written.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
	policy     services.AccessPolicy
	clock      ports.Clock
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectory,
	policy services.AccessPolicy,
	clock ports.Clock,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		policy:     policy,
		clock:      clock,
	}
}

// Handle processes the edit command and returns the updated order.
//
// The patch is merged against the stored values first, so a command that only
// moves the departure date is still checked against the stored return date.
// The write is optimistic-lock guarded; a concurrent modification surfaces as
// a ConflictError from the repository.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor, err := h.users.GetByID(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.CanEdit(actor, aggregate); err != nil {
		return nil, err
	}

	destination := aggregate.Destination()
	if cmd.Destination() != nil {
		destination = *cmd.Destination()
	}

	departure := aggregate.Period().Departure()
	if cmd.DepartureDate() != nil {
		departure = *cmd.DepartureDate()
	}

	returning := aggregate.Period().Return()
	if cmd.ReturnDate() != nil {
		returning = *cmd.ReturnDate()
	}

	period, err := kernel.NewTravelPeriod(departure, returning)
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeDetails(destination, period); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		actor.ID(),
		audit.SubjectOrder,
		aggregate.ID(),
		audit.ActionOrderUpdated,
		map[string]any{
			"destination":    aggregate.Destination(),
			"departure_date": aggregate.Period().Departure().Format(auditDateLayout),
			"return_date":    aggregate.Period().Return().Format(auditDateLayout),
		},
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
