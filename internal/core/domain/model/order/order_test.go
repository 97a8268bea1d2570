package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("home_delivery_starts_preparing_with_three_intervals", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.DeliveryTypeHomeDelivery, []order.LineItem{
			order.NewLineItem(1, 2),
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusPreparing, o.Status())
		assert.Equal(t, 3, o.TimeRemaining())
		assert.Nil(t, o.AssignedAgentID())
		assert.False(t, o.IsDone())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("takeaway_starts_preparing_with_one_interval", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.DeliveryTypeTakeaway, nil)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPreparing, o.Status())
		assert.Equal(t, 1, o.TimeRemaining())
	})

	t.Run("unrecognized_delivery_type_behaves_like_takeaway", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.ParseDeliveryType("carrier_pigeon"), nil)

		require.NoError(t, err)
		assert.Equal(t, 1, o.TimeRemaining())
		assert.Equal(t, "carrier_pigeon", o.DeliveryType().String())
	})

	t.Run("invalid_user_id_rejected", func(t *testing.T) {
		_, err := order.NewOrder(0, kernel.DeliveryTypeTakeaway, nil)
		require.Error(t, err)
	})

	t.Run("non_positive_quantities_are_kept_as_given", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.DeliveryTypeTakeaway, []order.LineItem{
			order.NewLineItem(99, -5),
			order.NewLineItem(1, 0),
		})

		require.NoError(t, err)
		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, -5, items[0].Quantity())
		assert.Equal(t, 0, items[1].Quantity())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed_order_is_valid", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.DeliveryTypeTakeaway, nil)
		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})

	t.Run("zero_value_order_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Advance_HomeDelivery(t *testing.T) {
	o, err := order.NewOrder(1, kernel.DeliveryTypeHomeDelivery, nil)
	require.NoError(t, err)

	require.NoError(t, o.Advance())
	assert.Equal(t, order.StatusOutForDelivery, o.Status())
	assert.Equal(t, 2, o.TimeRemaining())

	require.NoError(t, o.Advance())
	assert.Equal(t, order.StatusOutForDelivery, o.Status())
	assert.Equal(t, 1, o.TimeRemaining())

	require.NoError(t, o.Advance())
	assert.Equal(t, order.StatusDone, o.Status())
	assert.Equal(t, 0, o.TimeRemaining())
	assert.True(t, o.IsDone())

	// done is terminal
	require.ErrorIs(t, o.Advance(), order.ErrOrderAlreadyDone)
	assert.Equal(t, order.StatusDone, o.Status())
	assert.Equal(t, 0, o.TimeRemaining())
}

func TestOrder_Advance_Takeaway(t *testing.T) {
	o, err := order.NewOrder(1, kernel.DeliveryTypeTakeaway, nil)
	require.NoError(t, err)

	require.NoError(t, o.Advance())
	assert.Equal(t, order.StatusDone, o.Status())
	assert.Equal(t, 0, o.TimeRemaining())

	require.ErrorIs(t, o.Advance(), order.ErrOrderAlreadyDone)
}

func TestOrder_AssignAgent(t *testing.T) {
	t.Run("preparing_home_delivery_order_takes_agent", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.DeliveryTypeHomeDelivery, nil)
		require.NoError(t, err)

		require.NoError(t, o.AssignAgent(7))
		require.NotNil(t, o.AssignedAgentID())
		assert.Equal(t, int64(7), *o.AssignedAgentID())
	})

	t.Run("takeaway_order_never_takes_agent", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.DeliveryTypeTakeaway, nil)
		require.NoError(t, err)

		require.ErrorIs(t, o.AssignAgent(7), order.ErrAgentNotAllowed)
	})

	t.Run("agent_cannot_be_assigned_twice", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.DeliveryTypeHomeDelivery, nil)
		require.NoError(t, err)

		require.NoError(t, o.AssignAgent(7))
		require.ErrorIs(t, o.AssignAgent(8), order.ErrAgentNotAllowed)
	})

	t.Run("invalid_agent_id_rejected", func(t *testing.T) {
		o, err := order.NewOrder(1, kernel.DeliveryTypeHomeDelivery, nil)
		require.NoError(t, err)

		require.Error(t, o.AssignAgent(0))
	})
}

func TestOrder_AssignID(t *testing.T) {
	o, err := order.NewOrder(1, kernel.DeliveryTypeTakeaway, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), o.ID())

	require.NoError(t, o.AssignID(42))
	assert.Equal(t, int64(42), o.ID())

	require.Error(t, o.AssignID(43))
	require.Error(t, o.AssignID(-1))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_mid_lifecycle_state", func(t *testing.T) {
		agentID := int64(2)
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(5, 1, createdAt, kernel.DeliveryTypeHomeDelivery,
			order.StatusOutForDelivery, &agentID, 2, []order.LineItem{order.NewLineItem(1, 2)})

		require.NoError(t, err)
		assert.Equal(t, int64(5), o.ID())
		assert.Equal(t, order.StatusOutForDelivery, o.Status())
		assert.Equal(t, 2, o.TimeRemaining())
		require.NotNil(t, o.AssignedAgentID())
		assert.Equal(t, agentID, *o.AssignedAgentID())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.RestoreOrder(5, 1, time.Now(), kernel.DeliveryTypeTakeaway,
			order.Status("burned"), nil, 1, nil)
		require.Error(t, err)
	})

	t.Run("rejects_non_positive_ids", func(t *testing.T) {
		_, err := order.RestoreOrder(0, 1, time.Now(), kernel.DeliveryTypeTakeaway,
			order.StatusPreparing, nil, 1, nil)
		require.Error(t, err)

		_, err = order.RestoreOrder(5, 0, time.Now(), kernel.DeliveryTypeTakeaway,
			order.StatusPreparing, nil, 1, nil)
		require.Error(t, err)
	})
}
