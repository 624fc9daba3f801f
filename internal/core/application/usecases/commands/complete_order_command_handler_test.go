package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ready := restoredOrder(t, order.Ready)
	cmd, err := commands.NewCompleteOrderCommand(ready.Code())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	pizzaRepo := new(MockPizzaRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByCode", mock.Anything, ready.Code()).Return(ready, nil).Once()
	orderRepo.On("Update", mock.Anything, ready).Return(nil).Once()
	uow.On("PizzaRepository").Return(pizzaRepo).Once()
	pizzaRepo.On("Get", mock.Anything, int64(1)).Return(margherita(t, true), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.Status)
	require.NotNil(t, resp.CompletedAt)
}

func TestCompleteOrderCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	completed := restoredOrder(t, order.Completed)
	cmd, err := commands.NewCompleteOrderCommand(completed.Code())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByCode", mock.Anything, completed.Code()).Return(completed, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)

	var transition *order.InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, order.Completed, transition.Current)
}
