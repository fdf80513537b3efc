package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcamp/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the usecases for each
// entity and a logger for structured logging; routes are registered on a
// chi.Router for convenient method handling.
type Handler struct {
	advertisers port.AdvertiserUseCase
	campaigns   port.CampaignUseCase
	publishers  port.PublisherUseCase
	countries   port.CountryUseCase
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	advertisers port.AdvertiserUseCase,
	campaigns port.CampaignUseCase,
	publishers port.PublisherUseCase,
	countries port.CountryUseCase,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		advertisers: advertisers,
		campaigns:   campaigns,
		publishers:  publishers,
		countries:   countries,
		logger:      logger,
	}
	r := chi.NewRouter()
	r.Use(h.cors, h.requestID)

	r.Route("/advertisers", func(r chi.Router) {
		r.Post("/", h.handleAdvertiserStore)
		r.Get("/", h.handleAdvertiserIndex)
		r.Get("/filter", h.handleAdvertiserFilter)
		r.Get("/{id}", h.handleAdvertiserShow)
		r.Put("/{id}", h.handleAdvertiserUpdate)
		r.Delete("/{id}", h.handleAdvertiserDelete)
	})

	r.Route("/campaigns", func(r chi.Router) {
		r.Post("/", h.handleCampaignStore)
		r.Get("/", h.handleCampaignIndex)
		r.Get("/fetch", h.handleCampaignFetch)
		r.Get("/filter", h.handleCampaignFilter)
		r.Get("/{id}", h.handleCampaignShow)
		r.Put("/{id}", h.handleCampaignUpdate)
		r.Delete("/{id}", h.handleCampaignDelete)
		r.Post("/{id}/publishers", h.handleCampaignAttachPublisher)
		r.Put("/{id}/publishers/{publisher_id}", h.handleCampaignUpdatePublisherResult)
		r.Delete("/{id}/publishers/{publisher_id}", h.handleCampaignDetachPublisher)
	})

	r.Route("/publishers", func(r chi.Router) {
		r.Post("/", h.handlePublisherStore)
		r.Get("/", h.handlePublisherIndex)
		r.Get("/filter", h.handlePublisherFilter)
		r.Get("/{id}", h.handlePublisherShow)
		r.Put("/{id}", h.handlePublisherUpdate)
		r.Delete("/{id}", h.handlePublisherDelete)
	})

	r.Get("/countries", h.handleCountryIndex)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
