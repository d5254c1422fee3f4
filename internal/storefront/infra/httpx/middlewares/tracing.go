package middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// AttachTracingMetadata copies chi's request ID into the context under a
// typed key and echoes it back to the client, so log lines, traces and
// responses can all be correlated by the same ID.
func AttachTracingMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())

		ctx := context.WithValue(r.Context(), ContextKeyRequestID, requestID)
		w.Header().Set(HeaderXRequestId, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
