package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"adcamp/internal/core/domain"
)

type loggerKey struct{}

// log returns the request-scoped logger installed by the requestID
// middleware, falling back to the handler's base logger.
func (h *Handler) log(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return h.logger
}

// decodeBody decodes a JSON object body. Numbers are kept as json.Number
// so decimal bids survive with full precision. An empty body decodes to
// an empty payload.
func decodeBody(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	payload := map[string]any{}
	if err := dec.Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return payload, nil
}

// queryParams flattens the query string to one value per key for the
// filter endpoints.
func queryParams(r *http.Request) map[string]string {
	params := map[string]string{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log(ctx).Error("encode response error", slog.Any("error", err))
	}
}

// writeError translates an error to its HTTP answer. This is the single
// place the error taxonomy meets status codes and body shapes: validation
// batches render as {errors}, create-path referential failures as
// {message}, everything else carrying a domain kind as {error}. Errors
// without a kind are store or adapter failures and answer 500.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		switch derr.Kind {
		case domain.KindValidation:
			h.writeJSON(ctx, w, derr.Status, map[string]any{"errors": derr.Messages})
		case domain.KindReferenceNotFound:
			h.writeJSON(ctx, w, derr.Status, map[string]string{"message": derr.Message()})
		default:
			h.writeJSON(ctx, w, derr.Status, map[string]string{"error": derr.Message()})
		}
		return
	}
	h.log(ctx).Error("request failed", slog.Any("error", err))
	h.writeJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func (h *Handler) writeInvalidJSON(ctx context.Context, w http.ResponseWriter) {
	h.writeJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
}
