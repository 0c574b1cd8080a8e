package commands

import (
	"context"

	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler marks a single notification as read.
// The operation is idempotent: re-marking an already-read notification keeps
// its original timestamp and writes nothing.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      ports.Clock
}

// NewMarkNotificationReadCommandHandler creates a handler for marking
// notifications read.
func NewMarkNotificationReadCommandHandler(
	uowFactory NotificationUoWFactory,
	clock ports.Clock,
) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the mark-read command.
func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	note, err := uow.NotificationRepository().Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !note.BelongsTo(cmd.ActorID()) {
		return errs.NewForbiddenError("mark-read",
			"you can only manage your own notifications")
	}

	if changed := note.MarkRead(h.clock.Now()); changed {
		if err = uow.NotificationRepository().Update(ctx, note); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
