package commands

import (
	"context"

	"travelorders/internal/core/domain/model/audit"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders always start in the "requested" status, carry a snapshot of the
// owner's display name, and leave an audit entry in the same transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, users, clock)
//	cmd, _ := NewCreateOrderCommand(actorID, "Recife", departure, returning)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectory,
	clock ports.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		clock:      clock,
	}
}

// Handle processes the order creation command and returns the created order.
//
// When the command targets another owner, the actor must be an administrator;
// otherwise the order is created for the actor themselves. The "requested"
// status is resolved from the registry inside the transaction, so a creation
// can never race with the registry being reseeded.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor, err := h.users.GetByID(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	owner := actor
	if cmd.HasTargetOwner() && !cmd.OwnerID().IsEqual(actor.ID()) {
		if !actor.IsAdmin() {
			return nil, errs.NewForbiddenError("create",
				"only administrators can create orders for other users")
		}
		if owner, err = h.users.GetByID(ctx, cmd.OwnerID()); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requested, err := uow.StatusRepository().GetByName(ctx, status.RequestedName)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		owner.ID(),
		owner.Name(),
		cmd.Destination(),
		cmd.Period(),
		requested,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	properties := map[string]any{
		"destination":    aggregate.Destination(),
		"departure_date": aggregate.Period().Departure().Format(auditDateLayout),
		"return_date":    aggregate.Period().Return().Format(auditDateLayout),
		"status":         aggregate.Status().Name(),
	}
	if !owner.ID().IsEqual(actor.ID()) {
		properties["created_for_user_id"] = owner.ID().String()
		properties["created_for_user_name"] = owner.Name()
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		actor.ID(),
		audit.SubjectOrder,
		aggregate.ID(),
		audit.ActionOrderCreated,
		properties,
		now,
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
