package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	lines := []commands.OrderLine{{PizzaID: 1, Quantity: 2}}

	cmd, err := commands.NewCreateOrderCommand("Mario Rossi", "+39 333 1234567", lines)
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "Mario Rossi", cmd.CustomerName())
	assert.Equal(t, "+39 333 1234567", cmd.CustomerPhone())
	assert.Equal(t, lines, cmd.Lines())
}

func TestNewCreateOrderCommand_ValidationErrors(t *testing.T) {
	lines := []commands.OrderLine{{PizzaID: 1, Quantity: 2}}

	tests := []struct {
		name          string
		customerName  string
		customerPhone string
		lines         []commands.OrderLine
		wantErr       error
	}{
		{"empty name", "", "+39 333 1234567", lines, commands.ErrCustomerNameIsRequired},
		{"no lines", "Mario Rossi", "+39 333 1234567", nil, order.ErrOrderHasNoItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(tt.customerName, tt.customerPhone, tt.lines)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCreateOrderCommand_EmptyPhone_IsAllowed(t *testing.T) {
	lines := []commands.OrderLine{{PizzaID: 1, Quantity: 2}}

	cmd, err := commands.NewCreateOrderCommand("Mario Rossi", "", lines)
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Empty(t, cmd.CustomerPhone())
}

func TestCreateOrderCommand_Lines_ReturnsCopy(t *testing.T) {
	lines := []commands.OrderLine{{PizzaID: 1, Quantity: 2}}
	cmd, err := commands.NewCreateOrderCommand("Mario Rossi", "+39 333 1234567", lines)
	require.NoError(t, err)

	got := cmd.Lines()
	got[0].Quantity = 99
	assert.Equal(t, 2, cmd.Lines()[0].Quantity)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
