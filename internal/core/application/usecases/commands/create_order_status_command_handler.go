package commands

import (
	"context"

	"travelorders/internal/core/domain/model/audit"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/errs"
)

// CreateOrderStatusCommandHandler handles registration of custom statuses.
// The domain rejects names colliding with the built-in vocabulary; the
// repository's unique constraint rejects duplicates among custom names, so a
// racing double-create loses cleanly with a DuplicateNameError.
type CreateOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	users      ports.UserDirectory
	clock      ports.Clock
}

// NewCreateOrderStatusCommandHandler creates a handler for status registration.
func NewCreateOrderStatusCommandHandler(
	uowFactory StatusUoWFactory,
	users ports.UserDirectory,
	clock ports.Clock,
) CreateOrderStatusCommandHandler {
	return CreateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		clock:      clock,
	}
}

// Handle processes the registration command and returns the new status.
func (h *CreateOrderStatusCommandHandler) Handle(ctx context.Context, cmd CreateOrderStatusCommand) (*status.Status, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor, err := h.users.GetByID(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, errs.NewForbiddenError("create-status",
			"only administrators can manage order statuses")
	}

	aggregate, err := status.NewCustomStatus(kernel.NewUUID(), cmd.Name())
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

	if err = uow.StatusRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		actor.ID(),
		audit.SubjectOrderStatus,
		aggregate.ID(),
		audit.ActionCustomStatusCreated,
		map[string]any{"name": aggregate.Name()},
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
