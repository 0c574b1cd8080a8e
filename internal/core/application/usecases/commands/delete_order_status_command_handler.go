package commands

import (
	"context"

	"travelorders/internal/core/domain/model/audit"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/errs"
)

// DeleteOrderStatusCommandHandler handles removal of custom statuses.
// Built-in statuses are protected by the domain entity itself. Orders that
// currently carry a removed status keep it; their stored status reference
// stays resolvable because the removal is a soft delete.
type DeleteOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	users      ports.UserDirectory
	clock      ports.Clock
}

// NewDeleteOrderStatusCommandHandler creates a handler for status removal.
func NewDeleteOrderStatusCommandHandler(
	uowFactory StatusUoWFactory,
	users ports.UserDirectory,
	clock ports.Clock,
) DeleteOrderStatusCommandHandler {
	return DeleteOrderStatusCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		clock:      clock,
	}
}

// Handle processes the removal command.
func (h *DeleteOrderStatusCommandHandler) Handle(ctx context.Context, cmd DeleteOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := h.users.GetByID(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewForbiddenError("delete-status",
			"only administrators can manage order statuses")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.StatusRepository().Get(ctx, cmd.StatusID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	if err = uow.StatusRepository().Delete(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		actor.ID(),
		audit.SubjectOrderStatus,
		aggregate.ID(),
		audit.ActionCustomStatusDeleted,
		map[string]any{"name": aggregate.Name()},
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
