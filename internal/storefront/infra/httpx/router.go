package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcuriel/toyshop-storefront/internal/storefront/core/session"
	"github.com/jcuriel/toyshop-storefront/internal/storefront/infra/httpx/middlewares"
)

func NewRouter(handler *Handler, sessions *session.Manager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachTracingMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Session resolution only on the storefront API; health checks must not
	// mint sessions.
	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.Session(sessions))

		r.Get("/catalog", handler.ListCatalog)
		r.Post("/catalog/seed", handler.SeedCatalog)

		r.Get("/cart", handler.GetCart)
		r.Post("/cart/items", handler.AddItem)
		r.Delete("/cart/items/{id}", handler.RemoveItem)
		r.Patch("/cart/items/{id}", handler.AdjustItem)

		r.Post("/checkout", handler.Checkout)
	})

	return r
}
