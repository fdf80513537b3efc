package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handlePublisherStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, err := decodeBody(r)
	if err != nil {
		h.writeInvalidJSON(ctx, w)
		return
	}
	publisher, err := h.publishers.Create(ctx, payload)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusCreated, publisher)
}

func (h *Handler) handlePublisherIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	publishers, err := h.publishers.List(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, publishers)
}

func (h *Handler) handlePublisherShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	publisher, err := h.publishers.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, publisher)
}

func (h *Handler) handlePublisherFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	publishers, err := h.publishers.Filter(ctx, queryParams(r))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, publishers)
}

func (h *Handler) handlePublisherUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, err := decodeBody(r)
	if err != nil {
		h.writeInvalidJSON(ctx, w)
		return
	}
	publisher, err := h.publishers.Update(ctx, chi.URLParam(r, "id"), payload)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, publisher)
}

func (h *Handler) handlePublisherDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.publishers.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
