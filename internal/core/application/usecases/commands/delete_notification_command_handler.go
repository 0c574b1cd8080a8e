package commands

import (
	"context"

	"travelorders/internal/pkg/errs"
)

// DeleteNotificationCommandHandler removes one notification from its owner's
// feed. The delete is soft; an already-deleted notification reads as
// not-found.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewDeleteNotificationCommandHandler creates a handler for notification
// deletion.
func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
func (h *DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd DeleteNotificationCommand) error {
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
		return errs.NewForbiddenError("delete-notification",
			"you can only manage your own notifications")
	}

	if err = uow.NotificationRepository().Delete(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
