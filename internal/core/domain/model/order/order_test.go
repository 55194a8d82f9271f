package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("avocado", strPtr("d"), 2, 27.0)
	require.NoError(t, err)
	return []order.Item{item}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with valid data", func(t *testing.T) {
		o, err := order.NewOrder("o1", order.New, testItems(t), 54.0)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "o1", o.ID())
		assert.Equal(t, order.New, o.Status())
		assert.Len(t, o.Items(), 1)
		assert.InDelta(t, 54.0, o.TotalPrice(), 0.0001)
	})

	t.Run("should allow empty item list", func(t *testing.T) {
		o, err := order.NewOrder("o1", order.New, nil, 0)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := order.NewOrder("", order.New, testItems(t), 54.0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.NewOrder("o1", order.Status("SHIPPED"), testItems(t), 54.0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative total price", func(t *testing.T) {
		_, err := order.NewOrder("o1", order.New, testItems(t), -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "total price is invalid")
	})

	t.Run("should reject items not created via NewItem", func(t *testing.T) {
		_, err := order.NewOrder("o1", order.New, []order.Item{{}}, 54.0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "items are invalid")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order from stored values", func(t *testing.T) {
		o, err := order.RestoreOrder("o1", order.Registered, testItems(t), 54.0)

		require.NoError(t, err)
		assert.Equal(t, order.Registered, o.Status())
	})

	t.Run("should reject stored records violating the model", func(t *testing.T) {
		_, err := order.RestoreOrder("o1", order.Unknown, testItems(t), 54.0)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for zero-value order", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should accept any valid status from any other", func(t *testing.T) {
		o, err := order.NewOrder("o1", order.Done, testItems(t), 54.0)
		require.NoError(t, err)

		// No transition graph: even Done -> New is legal.
		require.NoError(t, o.ChangeStatus(order.New))
		require.NoError(t, o.ChangeStatus(order.Failed))
		assert.Equal(t, order.Failed, o.Status())
	})

	t.Run("should reject out-of-vocabulary status", func(t *testing.T) {
		o, err := order.NewOrder("o1", order.New, testItems(t), 54.0)
		require.NoError(t, err)

		err = o.ChangeStatus(order.Status("SHIPPED"))
		require.Error(t, err)
		assert.Equal(t, order.New, o.Status())
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a defensive copy", func(t *testing.T) {
		o, err := order.NewOrder("o1", order.New, testItems(t), 54.0)
		require.NoError(t, err)

		items := o.Items()
		items[0] = order.Item{}

		assert.Equal(t, "avocado", o.Items()[0].Title())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by external id", func(t *testing.T) {
		a, err := order.NewOrder("o1", order.New, testItems(t), 54.0)
		require.NoError(t, err)
		b, err := order.NewOrder("o1", order.Done, nil, 0)
		require.NoError(t, err)
		c, err := order.NewOrder("o2", order.New, testItems(t), 54.0)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})
}
