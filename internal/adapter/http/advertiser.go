package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleAdvertiserStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, err := decodeBody(r)
	if err != nil {
		h.writeInvalidJSON(ctx, w)
		return
	}
	advertiser, err := h.advertisers.Create(ctx, payload)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusCreated, advertiser)
}

func (h *Handler) handleAdvertiserIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	advertisers, err := h.advertisers.List(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, advertisers)
}

func (h *Handler) handleAdvertiserShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	advertiser, err := h.advertisers.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, advertiser)
}

func (h *Handler) handleAdvertiserFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	advertisers, err := h.advertisers.Filter(ctx, queryParams(r))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, advertisers)
}

func (h *Handler) handleAdvertiserUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, err := decodeBody(r)
	if err != nil {
		h.writeInvalidJSON(ctx, w)
		return
	}
	advertiser, err := h.advertisers.Update(ctx, chi.URLParam(r, "id"), payload)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, advertiser)
}

func (h *Handler) handleAdvertiserDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.advertisers.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
