package entity

import "math"

// Placeholder customer identity: there is no customer-entry form in this
// storefront, so every order is placed as a guest.
const (
	GuestName    = "Guest"
	GuestEmail   = "guest@example.com"
	GuestAddress = "123 Demo St"
)

// OrderLine is one line of a submitted order. Field names follow the remote
// orders endpoint, which calls the product reference `toy_id`.
type OrderLine struct {
	ToyID    string  `json:"toy_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Order is the one-time snapshot of a cart built at checkout. It is submitted
// once; the client keeps no further lifecycle for it.
type Order struct {
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerAddress string      `json:"customer_address"`
	Items           []OrderLine `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Total           float64     `json:"total"`
}

// BuildOrder snapshots the cart into an order payload. This is the only place
// money is rounded: totals accumulate unrounded inside the cart and are fixed
// to 2 decimals here, at the serialisation boundary.
func (c *Cart) BuildOrder() Order {
	lines := make([]OrderLine, 0, len(c.items))
	for _, li := range c.items {
		lines = append(lines, OrderLine{
			ToyID:    li.ID,
			Name:     li.Name,
			Price:    li.Price,
			Quantity: li.Quantity,
			Image:    li.Image,
		})
	}

	t := c.Totals()
	return Order{
		CustomerName:    GuestName,
		CustomerEmail:   GuestEmail,
		CustomerAddress: GuestAddress,
		Items:           lines,
		Subtotal:        Round2(t.Subtotal),
		Shipping:        Round2(t.Shipping),
		Total:           Round2(t.Total),
	}
}

// Round2 rounds a currency amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
