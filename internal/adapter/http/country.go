package httpadapter

import "net/http"

func (h *Handler) handleCountryIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	countries, err := h.countries.List(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	h.writeJSON(ctx, w, http.StatusOK, countries)
}
