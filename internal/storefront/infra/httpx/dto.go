package httpx

type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Rating    float64 `json:"rating"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Units    int                `json:"units"`
	Subtotal float64            `json:"subtotal"`
	Shipping float64            `json:"shipping"`
	Total    float64            `json:"total"`
}

type CheckoutResponse struct {
	OrderID string `json:"order_id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
