package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderSnapshotsCartWithGuestCustomer(t *testing.T) {
	var c Cart
	c.Add(Product{ID: "a", Name: "Bear", Price: 10, Image: "https://img/bear"})
	c.Add(Product{ID: "b", Name: "Blocks", Price: 20})
	c.Add(Product{ID: "a", Name: "Bear", Price: 10, Image: "https://img/bear"})

	order := c.BuildOrder()

	assert.Equal(t, GuestName, order.CustomerName)
	assert.Equal(t, GuestEmail, order.CustomerEmail)
	assert.Equal(t, GuestAddress, order.CustomerAddress)

	require.Len(t, order.Items, 2)
	assert.Equal(t, OrderLine{ToyID: "a", Name: "Bear", Price: 10, Quantity: 2, Image: "https://img/bear"}, order.Items[0])
	assert.Equal(t, OrderLine{ToyID: "b", Name: "Blocks", Price: 20, Quantity: 1, Image: ""}, order.Items[1])

	assert.Equal(t, 40.0, order.Subtotal)
	assert.Equal(t, 5.0, order.Shipping)
	assert.Equal(t, 45.0, order.Total)
}

func TestBuildOrderRoundsOnlyAtTheBoundary(t *testing.T) {
	var c Cart
	// 3 x 0.10 accumulates binary noise; the cart keeps it, the order doesn't.
	c.Add(Product{ID: "a", Name: "Sticker", Price: 0.10})
	c.AdjustQuantity("a", 2)

	totals := c.Totals()
	order := c.BuildOrder()

	assert.InDelta(t, 0.30, totals.Subtotal, 1e-9)
	assert.Equal(t, 0.30, order.Subtotal)
	assert.Equal(t, 5.30, order.Total)
}

func TestBuildOrderDoesNotClearCart(t *testing.T) {
	var c Cart
	c.Add(Product{ID: "a", Name: "Bear", Price: 10})
	_ = c.BuildOrder()
	assert.False(t, c.Empty(), "clearing happens only after a confirmed submission")
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 10.0, Round2(10.0001))
	assert.Equal(t, 0.0, Round2(0))
}

func TestProductDisplayRatingDefaultsToFour(t *testing.T) {
	assert.Equal(t, DefaultRating, Product{}.DisplayRating())
	assert.Equal(t, 3.5, Product{Rating: 3.5}.DisplayRating())
}
