package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toy(id, name string, price float64) Product {
	return Product{ID: id, Name: name, Price: price, InStock: true}
}

func TestCartAddDistinctProductsKeepsFirstAddOrder(t *testing.T) {
	var c Cart
	c.Add(toy("a", "Bear", 10))
	c.Add(toy("b", "Blocks", 20))
	c.Add(toy("c", "Robot", 30))

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "c", items[2].ID)
	for _, li := range items {
		assert.Equal(t, 1, li.Quantity)
	}
}

func TestCartAddExistingProductIncrementsWithoutDuplicating(t *testing.T) {
	var c Cart
	c.Add(toy("a", "Bear", 10))
	c.Add(toy("b", "Blocks", 20))
	c.Add(toy("a", "Bear", 10))
	c.Add(toy("a", "Bear", 10))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID, "position of the existing item is preserved")
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCartRemove(t *testing.T) {
	var c Cart
	c.Add(toy("a", "Bear", 10))
	c.Add(toy("b", "Blocks", 20))

	c.Remove("a")
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	// Removing an absent item is a no-op.
	c.Remove("nope")
	assert.Len(t, c.Items(), 1)

	c.Remove("b")
	assert.True(t, c.Empty())
}

func TestCartRemoveOnlyItemEmptiesCartAndZeroesTotals(t *testing.T) {
	var c Cart
	c.Add(toy("a", "Bear", 10))
	c.Remove("a")

	require.True(t, c.Empty())
	totals := c.Totals()
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Shipping)
	assert.Zero(t, totals.Total)
}

func TestCartAdjustQuantityClampsAtOne(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"increment", 1, 3},
		{"decrement", -1, 1},
		{"decrement past floor", -5, 1},
		{"large negative", -1000, 1},
		{"zero delta", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.Add(toy("a", "Bear", 10))
			c.Add(toy("a", "Bear", 10)) // quantity 2

			c.AdjustQuantity("a", tt.delta)

			items := c.Items()
			require.Len(t, items, 1, "adjusting never removes the item")
			assert.Equal(t, tt.want, items[0].Quantity)
		})
	}
}

func TestCartAdjustQuantityUnknownIDIsNoop(t *testing.T) {
	var c Cart
	c.Add(toy("a", "Bear", 10))
	c.AdjustQuantity("nope", 5)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestCartTotalsIsPure(t *testing.T) {
	var c Cart
	c.Add(toy("a", "Bear", 10))
	c.Add(toy("b", "Blocks", 19.99))
	c.AdjustQuantity("b", 2)

	first := c.Totals()
	second := c.Totals()
	assert.Equal(t, first, second, "no mutation between calls must mean identical totals")

	assert.InDelta(t, 10+3*19.99, first.Subtotal, 1e-9)
	assert.Equal(t, ShippingFee, first.Shipping)
	assert.InDelta(t, first.Subtotal+first.Shipping, first.Total, 1e-9)
}

func TestCartTotalsSingleItemScenario(t *testing.T) {
	var c Cart
	c.Add(toy("a", "Bear", 10))

	totals := c.Totals()
	assert.Equal(t, 10.0, totals.Subtotal)
	assert.Equal(t, 5.0, totals.Shipping)
	assert.Equal(t, 15.0, totals.Total)
}

func TestCartTotalsDoubleAddScenario(t *testing.T) {
	var c Cart
	c.Add(toy("a", "Bear", 12.5))
	c.Add(toy("a", "Bear", 12.5))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 25.0, c.Totals().Subtotal)
}

func TestCartTotalsEmptyCartHasNoShipping(t *testing.T) {
	var c Cart
	totals := c.Totals()
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Shipping)
	assert.Zero(t, totals.Total)
}

func TestCartUnits(t *testing.T) {
	var c Cart
	assert.Zero(t, c.Units())

	c.Add(toy("a", "Bear", 10))
	c.Add(toy("b", "Blocks", 20))
	c.AdjustQuantity("b", 3)
	assert.Equal(t, 5, c.Units())
}
