package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/domain/entity"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/ports"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/session"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/infra/adapters/toyapi"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/infra/httpx/middlewares"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/orderlog"
)

// Handler serves the storefront's user actions: browsing the catalog,
// editing the cart and checking out against the remote toy-shop API.
type Handler struct {
	catalog  ports.Catalog
	orders   ports.OrderGateway
	recorder *orderlog.Recorder // nil-safe: checkout logging skipped if nil
}

// NewHandler wires the handler with its catalog and order collaborators.
// recorder may be nil, in which case checkout attempts are not logged.
func NewHandler(catalog ports.Catalog, orders ports.OrderGateway, recorder *orderlog.Recorder) *Handler {
	return &Handler{
		catalog:  catalog,
		orders:   orders,
		recorder: recorder,
	}
}

// ListCatalog loads the product list for the requested filter and remembers
// it on the session. On failure the session's previous list is left
// untouched, matching the retry semantics of the original storefront.
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	sess := middlewares.SessionFromContext(r.Context())

	f := ports.Filter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	toys, err := h.catalog.List(r.Context(), f)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	sess.SetCatalog(f, toys)
	writeJSON(w, http.StatusOK, toys)
}

// SeedCatalog asks the remote API to populate sample products, then reloads
// the session's current filter so the fresh data is immediately visible.
func (h *Handler) SeedCatalog(w http.ResponseWriter, r *http.Request) {
	sess := middlewares.SessionFromContext(r.Context())

	if err := h.catalog.Seed(r.Context()); err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	f := sess.Filter()
	toys, err := h.catalog.List(r.Context(), f)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	sess.SetCatalog(f, toys)
	writeJSON(w, http.StatusOK, toys)
}

// GetCart returns the session's cart with freshly computed totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := middlewares.SessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, cartResponse(sess))
}

// AddItem puts a product from the currently loaded catalog into the cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess := middlewares.SessionFromContext(r.Context())

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "product_id is required")
		return
	}

	p, ok := sess.Product(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product_not_found", "product is not in the loaded catalog")
		return
	}
	if !p.InStock {
		writeError(w, http.StatusConflict, "out_of_stock", p.Name+" is out of stock")
		return
	}

	sess.Add(p)
	writeJSON(w, http.StatusOK, cartResponse(sess))
}

// RemoveItem deletes a line item. Removing an absent item is a no-op and
// still returns the (unchanged) cart.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := middlewares.SessionFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product_id_required", "")
		return
	}

	sess.Remove(id)
	writeJSON(w, http.StatusOK, cartResponse(sess))
}

// AdjustItem changes a line item's quantity by the requested delta.
// The quantity floor is 1: decrementing never removes the item.
func (h *Handler) AdjustItem(w http.ResponseWriter, r *http.Request) {
	sess := middlewares.SessionFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product_id_required", "")
		return
	}

	var req AdjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	sess.AdjustQuantity(id, req.Delta)
	writeJSON(w, http.StatusOK, cartResponse(sess))
}

// Checkout submits the cart as an order. An empty cart is absorbed silently
// (204, nothing submitted); on success the cart has been cleared and the
// server's order ID is returned; on failure the cart is untouched and the
// failure detail is surfaced.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess := middlewares.SessionFromContext(r.Context())

	orderID, err := sess.Checkout(r.Context(), h.orders, h.recorder)
	if errors.Is(err, session.ErrEmptyCart) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "checkout failed", "session_id", sess.ID, "error", err)

		var ce *toyapi.CheckoutError
		if errors.As(err, &ce) {
			writeError(w, http.StatusBadGateway, "checkout_failed", ce.Error())
			return
		}
		writeError(w, http.StatusBadGateway, "checkout_failed", "checkout failed")
		return
	}

	slog.InfoContext(r.Context(), "order placed", "session_id", sess.ID, "order_id", orderID)
	writeJSON(w, http.StatusOK, CheckoutResponse{OrderID: orderID})
}

func (h *Handler) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "catalog request failed", "error", err)

	var le *toyapi.LoadError
	if errors.As(err, &le) {
		writeError(w, http.StatusBadGateway, "catalog_unavailable", le.Error())
		return
	}
	writeError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load toys")
}

// cartResponse snapshots the session cart into the response shape. Money is
// rounded here for presentation only; the cart itself keeps unrounded values.
func cartResponse(sess *session.Session) CartResponse {
	items, units, totals := sess.CartView()

	out := make([]CartItemResponse, len(items))
	for i, li := range items {
		out[i] = CartItemResponse{
			ProductID: li.ID,
			Name:      li.Name,
			Price:     li.Price,
			Image:     li.Image,
			Rating:    li.DisplayRating(),
			Quantity:  li.Quantity,
			LineTotal: entity.Round2(li.LineTotal()),
		}
	}

	return CartResponse{
		Items:    out,
		Units:    units,
		Subtotal: entity.Round2(totals.Subtotal),
		Shipping: entity.Round2(totals.Shipping),
		Total:    entity.Round2(totals.Total),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
