package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePizzaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePizzaCommand("Diavola", "Tomato, mozzarella, spicy salami", decimal.NewFromFloat(8.50))
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	uow := new(MockPizzaUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PizzaRepository").Return(pizzaRepo).Once()
	pizzaRepo.On("Add", mock.Anything, mock.AnythingOfType("*menu.Pizza")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPizzaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePizzaCommandHandler(factory)
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "Diavola", resp.Name)
	assert.True(t, resp.Available, "new catalog entries start available")
	pizzaRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePizzaCommandHandler_Handle_NameTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePizzaCommand("Diavola", "", decimal.NewFromFloat(8.50))
	require.NoError(t, err)

	pizzaRepo := new(MockPizzaRepository)
	uow := new(MockPizzaUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PizzaRepository").Return(pizzaRepo).Once()
	pizzaRepo.On("Add", mock.Anything, mock.AnythingOfType("*menu.Pizza")).
		Return(menu.NewPizzaAlreadyExistsError("Diavola")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPizzaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePizzaCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, menu.ErrPizzaAlreadyExists)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreatePizzaCommandHandler_Handle_InvalidPizza(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePizzaCommand("", "", decimal.NewFromFloat(8.50))
	require.NoError(t, err)

	factory := new(MockPizzaUoWFactory)
	h := commands.NewCreatePizzaCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
