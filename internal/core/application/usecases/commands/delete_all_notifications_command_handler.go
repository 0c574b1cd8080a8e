package commands

import (
	"context"
)

// DeleteAllNotificationsCommandHandler clears the actor's notification feed.
// Deleting an already-empty feed succeeds and changes nothing.
type DeleteAllNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewDeleteAllNotificationsCommandHandler creates a handler for clearing
// notification feeds.
func NewDeleteAllNotificationsCommandHandler(uowFactory NotificationUoWFactory) DeleteAllNotificationsCommandHandler {
	return DeleteAllNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear-feed command.
func (h *DeleteAllNotificationsCommandHandler) Handle(ctx context.Context, cmd DeleteAllNotificationsCommand) error {
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

	if err := uow.NotificationRepository().DeleteAllByOwner(ctx, cmd.ActorID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
