package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcamp/internal/core/domain"
)

func (h *Handler) handleCampaignStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, err := decodeBody(r)
	if err != nil {
		h.writeInvalidJSON(ctx, w)
		return
	}
	campaign, err := h.campaigns.Create(ctx, payload)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusCreated, campaign)
}

// handleCampaignFetch answers the auction: the best-paying campaigns for
// a country, at most three, bid descending.
func (h *Handler) handleCampaignFetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaigns, err := h.campaigns.FetchTopBids(ctx, r.URL.Query().Get("country_id"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, campaigns)
}

func (h *Handler) handleCampaignIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaigns, err := h.campaigns.List(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, campaigns)
}

func (h *Handler) handleCampaignShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaign, err := h.campaigns.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, campaign)
}

func (h *Handler) handleCampaignFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaigns, err := h.campaigns.Filter(ctx, queryParams(r))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, campaigns)
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, err := decodeBody(r)
	if err != nil {
		h.writeInvalidJSON(ctx, w)
		return
	}
	campaign, err := h.campaigns.Update(ctx, chi.URLParam(r, "id"), payload)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, campaign)
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.campaigns.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignAttachPublisher attaches the publisher named in the body
// to the campaign in the path.
func (h *Handler) handleCampaignAttachPublisher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, err := decodeBody(r)
	if err != nil {
		h.writeInvalidJSON(ctx, w)
		return
	}
	publisherID, _ := payload["publisher_id"].(string)
	campaign, err := h.campaigns.AttachPublisher(ctx, chi.URLParam(r, "id"), publisherID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, campaign)
}

func (h *Handler) handleCampaignUpdatePublisherResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payload, err := decodeBody(r)
	if err != nil {
		h.writeInvalidJSON(ctx, w)
		return
	}
	number, ok := payload["publisher_result"].(json.Number)
	if !ok {
		h.writeError(ctx, w, domain.NewInvalidFieldError("publisher_result"))
		return
	}
	result, err := number.Float64()
	if err != nil {
		h.writeError(ctx, w, domain.NewInvalidFieldError("publisher_result"))
		return
	}
	campaign, err := h.campaigns.UpdatePublisherResult(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "publisher_id"), result)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, campaign)
}

func (h *Handler) handleCampaignDetachPublisher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaign, err := h.campaigns.DetachPublisher(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "publisher_id"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, campaign)
}
