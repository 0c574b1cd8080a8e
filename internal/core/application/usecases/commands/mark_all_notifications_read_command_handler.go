package commands

import (
	"context"

	"travelorders/internal/core/ports"
)

// MarkAllNotificationsReadCommandHandler marks every unread notification of
// the actor as read with a single stamped timestamp. Idempotent: a second run
// finds nothing unread and writes nothing.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      ports.Clock
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for bulk
// mark-read.
func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
	clock ports.Clock,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the bulk mark-read command.
func (h *MarkAllNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkAllNotificationsReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().MarkAllRead(ctx, cmd.ActorID(), h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
