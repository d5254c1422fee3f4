package ports

import (
	"context"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/domain/entity"
)

// OrderGateway submits finalized orders to the remote toy-shop API.
type OrderGateway interface {
	// Submit sends the order and returns the server-assigned order ID.
	Submit(ctx context.Context, order entity.Order) (string, error)
}
