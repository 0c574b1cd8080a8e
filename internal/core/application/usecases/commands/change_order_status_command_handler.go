package commands

import (
	"context"
	"time"

	"travelorders/internal/core/domain/model/audit"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles order status transitions. This is
// the heart of the workflow: one transaction carries the order mutation, the
// owner's notification, and the audit entry, so an observer never sees a
// transitioned order without its paper trail.
//
// The aggregate emits a StatusChanged event for each applied transition; the
// handler drains those events and materializes them as side effects before
// committing. The transition hook runs last inside the same transaction, so
// deployment-specific follow-ups (booking a travel record on approval, for
// example) share the all-or-nothing guarantee.
type ChangeOrderStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	users      ports.UserDirectory
	policy     services.AccessPolicy
	clock      ports.Clock
	hook       ports.TransitionHook
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	users ports.UserDirectory,
	policy services.AccessPolicy,
	clock ports.Clock,
	hook ports.TransitionHook,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		policy:     policy,
		clock:      clock,
		hook:       hook,
	}
}

// Handle processes the transition command and returns the updated order.
//
// Ordering of checks matters for the errors callers observe: an unknown order
// is reported before authorization, authorization before an unknown target
// status, and the lifecycle rules come last.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	if err = h.policy.CanChangeStatus(actor, aggregate); err != nil {
		return nil, err
	}

	target, err := uow.StatusRepository().GetByName(ctx, cmd.StatusName())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(target); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	for _, event := range aggregate.Events() {
		changed, ok := event.(order.StatusChanged)
		if !ok {
			continue
		}
		if err = h.applyStatusChanged(ctx, uow, actor.ID(), changed, now); err != nil {
			return nil, err
		}
		if err = h.hook.AfterStatusChange(ctx, aggregate, changed.OldStatusName, changed.NewStatusName); err != nil {
			return nil, err
		}
	}
	aggregate.ClearEvents()

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// applyStatusChanged stages the side effects of one transition: the owner's
// notification and the audit entry.
func (h *ChangeOrderStatusCommandHandler) applyStatusChanged(
	ctx context.Context,
	uow LifecycleUoW,
	actorID kernel.UUID,
	event order.StatusChanged,
	now time.Time,
) error {
	note, err := notification.NewStatusChangeNotification(
		kernel.NewUUID(),
		event.OwnerID,
		event.OrderID,
		event.Destination,
		event.OldStatusName,
		event.NewStatusName,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		actorID,
		audit.SubjectOrder,
		event.OrderID,
		audit.ActionOrderStatusUpdated,
		map[string]any{
			"old_status": event.OldStatusName,
			"new_status": event.NewStatusName,
		},
		now,
	)
	if err != nil {
		return err
	}

	return uow.AuditRepository().Add(ctx, entry)
}
