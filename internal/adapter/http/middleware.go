package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// requestID tags every request with a correlation id, exposes it in the
// X-Request-Id header and installs a request-scoped logger carrying it.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		logger := h.logger.With(slog.String("request_id", id))
		logger.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path))

		ctx := context.WithValue(r.Context(), loggerKey{}, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// cors mirrors the permissive CORS policy the API has always shipped
// with; preflight requests are answered without hitting a handler.
func (h *Handler) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
