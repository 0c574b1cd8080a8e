package commands_test

import (
	"errors"
	"testing"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/notification"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_ApprovalProducesNotificationAndAudit(t *testing.T) {
	ctx := t.Context()
	admin := restoreTestUser(t, "Ana Admin", true)
	owner := restoreTestUser(t, "Maria Silva", false)
	existing := restoreTestOrder(t, owner.ID(), status.RequestedName)
	cmd, _ := commands.NewChangeOrderStatusCommand(admin.ID(), existing.ID(), status.ApprovedName)

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, admin.ID()).Return(admin, nil).Once()

	approved := restoreTestStatus(t, status.ApprovedName)
	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	noteRepo := new(MockNotificationRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("StatusRepository").Return(statusRepo).Once()
	statusRepo.On("GetByName", mock.Anything, status.ApprovedName).Return(approved, nil).Once()
	orderRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("NotificationRepository").Return(noteRepo).Once()
	noteRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	uow.On("AuditRepository").Return(auditRepo).Once()
	auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()}, ports.NoopTransitionHook{})
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, status.ApprovedName, updated.Status().Name())
	assert.Empty(t, updated.Events())

	// the staged notification addresses the owner with the approval copy
	added := noteRepo.Calls[0].Arguments.Get(1).(*notification.Notification)
	assert.True(t, added.BelongsTo(owner.ID()))
	assert.Equal(t, notification.TypeApproved, added.Type())
	assert.Equal(t, "Order Approved!", added.Title())
	noteRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	actor := restoreTestUser(t, "Maria Silva", false)
	existing := restoreTestOrder(t, actor.ID(), status.RequestedName)
	cmd, _ := commands.NewChangeOrderStatusCommand(actor.ID(), existing.ID(), status.ApprovedName)

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, actor.ID()).Return(actor, nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()}, ports.NoopTransitionHook{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_AdminCannotChangeOwnOrder(t *testing.T) {
	ctx := t.Context()
	admin := restoreTestUser(t, "Ana Admin", true)
	existing := restoreTestOrder(t, admin.ID(), status.RequestedName)
	cmd, _ := commands.NewChangeOrderStatusCommand(admin.ID(), existing.ID(), status.ApprovedName)

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, admin.ID()).Return(admin, nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()}, ports.NoopTransitionHook{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelledOrderIsTerminal(t *testing.T) {
	ctx := t.Context()
	admin := restoreTestUser(t, "Ana Admin", true)
	owner := restoreTestUser(t, "Maria Silva", false)
	existing := restoreTestOrder(t, owner.ID(), status.CancelledName)
	cmd, _ := commands.NewChangeOrderStatusCommand(admin.ID(), existing.ID(), status.RequestedName)

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, admin.ID()).Return(admin, nil).Once()

	requested := restoreTestStatus(t, status.RequestedName)
	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("StatusRepository").Return(statusRepo).Once()
	statusRepo.On("GetByName", mock.Anything, status.RequestedName).Return(requested, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()}, ports.NoopTransitionHook{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.ErrorContains(t, err, "cannot change status of a cancelled order")
}

func TestChangeOrderStatusCommandHandler_Handle_ApprovedOrderCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	admin := restoreTestUser(t, "Ana Admin", true)
	owner := restoreTestUser(t, "Maria Silva", false)
	existing := restoreTestOrder(t, owner.ID(), status.ApprovedName)
	cmd, _ := commands.NewChangeOrderStatusCommand(admin.ID(), existing.ID(), status.CancelledName)

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, admin.ID()).Return(admin, nil).Once()

	cancelled := restoreTestStatus(t, status.CancelledName)
	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("StatusRepository").Return(statusRepo).Once()
	statusRepo.On("GetByName", mock.Anything, status.CancelledName).Return(cancelled, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()}, ports.NoopTransitionHook{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.ErrorContains(t, err, "cannot cancel an already-approved order")
}

func TestChangeOrderStatusCommandHandler_Handle_UnknownTargetStatus(t *testing.T) {
	ctx := t.Context()
	admin := restoreTestUser(t, "Ana Admin", true)
	owner := restoreTestUser(t, "Maria Silva", false)
	existing := restoreTestOrder(t, owner.ID(), status.RequestedName)
	cmd, _ := commands.NewChangeOrderStatusCommand(admin.ID(), existing.ID(), "on hold")

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, admin.ID()).Return(admin, nil).Once()

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("StatusRepository").Return(statusRepo).Once()
	statusRepo.On("GetByName", mock.Anything, "on hold").
		Return(nil, errs.NewObjectNotFoundError("name", "on hold")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()}, ports.NoopTransitionHook{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_HookErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	admin := restoreTestUser(t, "Ana Admin", true)
	owner := restoreTestUser(t, "Maria Silva", false)
	existing := restoreTestOrder(t, owner.ID(), status.RequestedName)
	cmd, _ := commands.NewChangeOrderStatusCommand(admin.ID(), existing.ID(), status.ApprovedName)

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, admin.ID()).Return(admin, nil).Once()

	approved := restoreTestStatus(t, status.ApprovedName)
	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	noteRepo := new(MockNotificationRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("StatusRepository").Return(statusRepo).Once()
	statusRepo.On("GetByName", mock.Anything, status.ApprovedName).Return(approved, nil).Once()
	orderRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("NotificationRepository").Return(noteRepo).Once()
	noteRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	uow.On("AuditRepository").Return(auditRepo).Once()
	auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	hook := new(MockTransitionHook)
	hook.On("AfterStatusChange", mock.Anything, existing, status.RequestedName, status.ApprovedName).
		Return(errors.New("travel record booking failed")).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(
		factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()}, hook)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	hook.AssertExpectations(t)
}
