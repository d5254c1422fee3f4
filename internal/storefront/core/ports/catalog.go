package ports

import (
	"context"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/domain/entity"
)

// Filter narrows a catalog listing. Empty fields are omitted from the
// remote query entirely, never sent as empty strings.
type Filter struct {
	Category string
	Query    string
}

// Catalog is the read side of the remote toy-shop API.
type Catalog interface {
	// List fetches the products matching the filter, in the order the
	// remote catalog returns them. A single attempt; retries are caller-driven.
	List(ctx context.Context, f Filter) ([]entity.Product, error)

	// Seed asks the remote catalog to populate itself with sample products.
	// The response body is not consumed; callers follow with a fresh List.
	Seed(ctx context.Context) error
}
