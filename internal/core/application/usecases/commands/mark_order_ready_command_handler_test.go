package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	inProgress := restoredOrder(t, order.InProgress)
	cmd, err := commands.NewMarkOrderReadyCommand(inProgress.Code())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pizzaRepo := new(MockPizzaRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByCode", mock.Anything, inProgress.Code()).Return(inProgress, nil).Once()
	orderRepo.On("Update", mock.Anything, inProgress).Return(nil).Once()
	uow.On("PizzaRepository").Return(pizzaRepo).Once()
	pizzaRepo.On("Get", mock.Anything, int64(1)).Return(margherita(t, true), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "READY", resp.Status)
	assert.Nil(t, resp.CompletedAt)
}

func TestMarkOrderReadyCommandHandler_Handle_NotInProgress(t *testing.T) {
	ctx := t.Context()
	pending := restoredOrder(t, order.Pending)
	cmd, err := commands.NewMarkOrderReadyCommand(pending.Code())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByCode", mock.Anything, pending.Code()).Return(pending, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
