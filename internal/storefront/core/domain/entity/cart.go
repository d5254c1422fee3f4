package entity

// ShippingFee is the flat shipping charge applied whenever the cart is non-empty.
const ShippingFee = 5.0

// LineItem is a product snapshot plus the quantity held in the cart.
// Its identity is the product ID: the cart never holds two line items
// for the same product.
type LineItem struct {
	Product
	Quantity int
}

// LineTotal is the price of this line (unit price times quantity), unrounded.
func (li LineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Totals are derived from the cart on every read and never stored,
// so they cannot go stale. Values are unrounded; rounding happens only
// when an Order is built or a value is presented.
type Totals struct {
	Subtotal float64
	Shipping float64
	Total    float64
}

// Cart is the session-scoped, insertion-ordered collection of line items.
// The zero value is an empty cart ready for use.
//
// Cart is not safe for concurrent use; the owning session serialises access.
type Cart struct {
	items []LineItem
}

// Add puts a product in the cart. If a line item for the product already
// exists its quantity is incremented by one and its position is kept;
// otherwise a new line item with quantity 1 is appended at the end.
func (c *Cart) Add(p Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: 1})
}

// Remove deletes the line item for the given product ID. Unknown IDs are a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// AdjustQuantity changes a line item's quantity by delta, clamping at 1.
// Reaching the floor never removes the item; removal is only via Remove.
// Unknown IDs are a no-op.
func (c *Cart) AdjustQuantity(id string, delta int) {
	for i := range c.items {
		if c.items[i].ID == id {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return
		}
	}
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Units is the total number of units across all line items.
func (c *Cart) Units() int {
	n := 0
	for _, li := range c.items {
		n += li.Quantity
	}
	return n
}

// Empty reports whether the cart holds no line items.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Clear drops all line items. Called only after a confirmed checkout.
func (c *Cart) Clear() {
	c.items = nil
}

// Totals computes subtotal, shipping and total for the current contents.
// Shipping is the flat fee iff the subtotal is positive.
func (c *Cart) Totals() Totals {
	var subtotal float64
	for _, li := range c.items {
		subtotal += li.LineTotal()
	}
	shipping := 0.0
	if subtotal > 0 {
		shipping = ShippingFee
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
