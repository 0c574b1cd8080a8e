package commands_test

import (
	"testing"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/status"
	"travelorders/internal/core/domain/services"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_OwnerDeletesOwnOrder(t *testing.T) {
	ctx := t.Context()
	owner := restoreTestUser(t, "Maria Silva", false)
	existing := restoreTestOrder(t, owner.ID(), status.RequestedName)
	cmd, _ := commands.NewDeleteOrderCommand(owner.ID(), existing.ID())

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, owner.ID()).Return(owner, nil).Once()

	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	orderRepo.On("Delete", mock.Anything, existing).Return(nil).Once()
	uow.On("AuditRepository").Return(auditRepo).Once()
	auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()})
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	stranger := restoreTestUser(t, "Carlos Souza", false)
	owner := restoreTestUser(t, "Maria Silva", false)
	existing := restoreTestOrder(t, owner.ID(), status.RequestedName)
	cmd, _ := commands.NewDeleteOrderCommand(stranger.ID(), existing.ID())

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, stranger.ID()).Return(stranger, nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()})
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_MissingOrder(t *testing.T) {
	ctx := t.Context()
	owner := restoreTestUser(t, "Maria Silva", false)
	missing := restoreTestOrder(t, owner.ID(), status.RequestedName)
	cmd, _ := commands.NewDeleteOrderCommand(owner.ID(), missing.ID())

	users := new(MockUserDirectory)
	users.On("GetByID", ctx, owner.ID()).Return(owner, nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, missing.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", missing.ID())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, users, services.NewAccessPolicy(), fixedClock{now: time.Now()})
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
