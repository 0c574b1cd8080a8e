package commands

import (
	"context"

	"travelorders/internal/core/domain/model/audit"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/core/ports"
)

// DeleteOrderCommandHandler handles soft deletion of orders. The row is
// retained for the audit trail; repeated deletes of the same order surface as
// not-found because regular reads exclude deleted rows.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
	policy     services.AccessPolicy
	clock      ports.Clock
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectory,
	policy services.AccessPolicy,
	clock ports.Clock,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		policy:     policy,
		clock:      clock,
	}
}

// Handle processes the delete command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := h.users.GetByID(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanDelete(actor, aggregate); err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		actor.ID(),
		audit.SubjectOrder,
		aggregate.ID(),
		audit.ActionOrderDeleted,
		map[string]any{
			"destination": aggregate.Destination(),
			"status":      aggregate.Status().Name(),
		},
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
