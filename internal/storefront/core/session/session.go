// Package session holds the per-user storefront state: the cart, the active
// catalog filter and the last loaded product list. It is the Go rendition of
// the state the browser app kept at the top of its rendering tree, made
// explicit and passed by reference to whatever mutates it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/domain/entity"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/ports"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/orderlog"
)

// ErrEmptyCart is returned by Checkout when there is nothing to submit.
// It is a local, recoverable condition: the HTTP layer absorbs it as a no-op.
var ErrEmptyCart = errors.New("cart is empty")

// Session is one user's in-memory storefront state. It lives for the process
// lifetime only; there is no persistence.
//
// A session is conceptually single-threaded (one user clicking), but the
// gateway serves its requests on arbitrary goroutines, so a mutex serialises
// access.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     entity.Cart
	filter   ports.Filter
	products []entity.Product
}

// SetCatalog records the outcome of a successful catalog load. Overlapping
// loads are not deduplicated: whichever completion lands last wins, which is
// acceptable for a single user's view.
func (s *Session) SetCatalog(f ports.Filter, toys []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
	s.products = toys
}

// Filter returns the filter of the last successful load.
func (s *Session) Filter() ports.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Product looks up a product by ID in the last loaded list. Items can only be
// added to the cart from the list the user is looking at.
func (s *Session) Product(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Add puts a product in the cart (new line item, or +1 on an existing one).
func (s *Session) Add(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
}

// Remove deletes a line item; unknown IDs are a no-op.
func (s *Session) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(id)
}

// AdjustQuantity changes a line item's quantity by delta, clamped at 1.
func (s *Session) AdjustQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AdjustQuantity(id, delta)
}

// CartView returns a consistent snapshot of the cart: items, unit count and
// freshly computed totals.
func (s *Session) CartView() ([]entity.LineItem, int, entity.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items(), s.cart.Units(), s.cart.Totals()
}

// Checkout snapshots the cart into an order, submits it through the gateway
// and clears the cart only on a confirmed success. On failure the cart is
// left exactly as it was so the user can retry.
//
// Each transition is recorded to the order log (rec is nil-safe). The lock is
// held across the submission: a session has at most one checkout in flight,
// and concurrent cart edits during submission would make the cleared-on-
// success semantics ambiguous.
func (s *Session) Checkout(ctx context.Context, gw ports.OrderGateway, rec *orderlog.Recorder) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Empty() {
		return "", ErrEmptyCart
	}

	order := s.cart.BuildOrder()
	attemptID := uuid.NewString()

	payload, _ := json.Marshal(order)
	rec.Record(ctx, orderlog.NewEntry(ctx, attemptID, orderlog.StatusSubmitted, "", string(payload), ""))

	remoteID, err := gw.Submit(ctx, order)
	if err != nil {
		rec.Record(ctx, orderlog.NewEntry(ctx, attemptID, orderlog.StatusRejected, "", "", err.Error()))
		return "", err
	}

	rec.Record(ctx, orderlog.NewEntry(ctx, attemptID, orderlog.StatusConfirmed, remoteID, "", ""))
	s.cart.Clear()
	return remoteID, nil
}
