package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetPizzaAvailabilityCommand_InvalidID(t *testing.T) {
	_, err := commands.NewSetPizzaAvailabilityCommand(0, true)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSetPizzaAvailabilityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetPizzaAvailabilityCommand(1, false)
	require.NoError(t, err)

	pizza := margherita(t, true)
	pizzaRepo := new(MockPizzaRepository)
	uow := new(MockPizzaUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PizzaRepository").Return(pizzaRepo).Once()
	pizzaRepo.On("Get", mock.Anything, int64(1)).Return(pizza, nil).Once()
	pizzaRepo.On("Update", mock.Anything, pizza).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPizzaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPizzaAvailabilityCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, resp.Available)
	pizzaRepo.AssertExpectations(t)
}

func TestSetPizzaAvailabilityCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetPizzaAvailabilityCommand(404, true)
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	uow := new(MockPizzaUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PizzaRepository").Return(pizzaRepo).Once()
	pizzaRepo.On("Get", mock.Anything, int64(404)).
		Return(nil, errs.NewObjectNotFoundError("pizza", int64(404))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPizzaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPizzaAvailabilityCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	pizzaRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
