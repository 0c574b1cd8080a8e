package commands

import (
	"context"
	"fmt"

	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/ports"
)

// RelayNotificationsCommandHandler sends the external (email-equivalent) copy
// of pending notifications and marks them relayed.
//
// Delivery is best-effort per notification: a failed send leaves that
// notification pending for the next run and does not abort the batch. Only
// successfully sent notifications get their relay mark, and the marks commit
// together at the end of the run.
type RelayNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	users      ports.UserDirectory
	mailer     ports.Mailer
	clock      ports.Clock
}

// NewRelayNotificationsCommandHandler creates a handler for notification
// relay runs.
func NewRelayNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	users ports.UserDirectory,
	mailer ports.Mailer,
	clock ports.Clock,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		mailer:     mailer,
		clock:      clock,
	}
}

// Handle processes one relay run and returns the number of notifications
// relayed.
func (h *RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.NotificationRepository().GetAllUnrelayed(ctx, cmd.Limit())
	if err != nil {
		return 0, err
	}

	relayed := 0
	for _, note := range pending {
		if err = h.relayOne(ctx, note); err != nil {
			// stays pending, next run retries
			continue
		}
		if note.MarkRelayed(h.clock.Now()) {
			if err = uow.NotificationRepository().Update(ctx, note); err != nil {
				return 0, err
			}
			relayed++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return relayed, nil
}

func (h *RelayNotificationsCommandHandler) relayOne(ctx context.Context, note *notification.Notification) error {
	owner, err := h.users.GetByID(ctx, note.OwnerID())
	if err != nil {
		return err
	}
	if owner.Email() == "" {
		return fmt.Errorf("user %s has no email address", owner.ID())
	}

	return h.mailer.Send(ctx, owner.Email(), note.Title(), note.Message())
}
