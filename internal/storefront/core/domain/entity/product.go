package entity

// DefaultRating is assumed when the catalog does not carry a rating for a product.
const DefaultRating = 4.0

// Product is a single catalog entry owned by the remote toy-shop API.
// The storefront never mutates it; JSON tags mirror the remote contract verbatim,
// including the Mongo-style `_id` field.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	InStock     bool    `json:"in_stock"`
}

// DisplayRating returns the rating to show for this product,
// falling back to DefaultRating when the catalog omitted it.
func (p Product) DisplayRating() float64 {
	if p.Rating <= 0 {
		return DefaultRating
	}
	return p.Rating
}
