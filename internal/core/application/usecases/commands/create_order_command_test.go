package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	items := []order.LineItem{order.NewLineItem(1, 2), order.NewLineItem(4, 1)}
	cmd, err := commands.NewCreateOrderCommand(7, items, kernel.DeliveryTypeHomeDelivery)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.UserID())
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, kernel.DeliveryTypeHomeDelivery, cmd.DeliveryType())
}

func TestNewCreateOrderCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, nil, kernel.DeliveryTypeTakeaway)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUserIDIsInvalid)
}

func TestNewCreateOrderCommand_EmptyItemsAccepted(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(3, nil, kernel.DeliveryTypeTakeaway)
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
}

func TestNewCreateOrderCommand_UnknownDeliveryTypeAccepted(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(3, nil, kernel.ParseDeliveryType("drone"))
	require.NoError(t, err)
	assert.Equal(t, "drone", cmd.DeliveryType().String())
}
