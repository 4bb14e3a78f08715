package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/beem-sms/internal/response"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HomeHandler serves basic root and health endpoints.
type HomeHandler struct {
	cache Pinger
}

// NewHomeHandler returns a new HomeHandler. cache may be nil.
func NewHomeHandler(cache Pinger) *HomeHandler { return &HomeHandler{cache: cache} }

// Index godoc
// @Summary     Welcome endpoint
// @Description Simple root endpoint that returns a welcome message.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	payload := response.WelcomePayload{
		Message: "Welcome to Beem SMS Gateway",
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// Health godoc
// @Summary     Health check
// @Description Returns a basic status payload and the reachability of the cache.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	payload := response.HealthPayload{
		Status: "ok",
		Cache:  "disabled",
	}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		payload.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			payload.Status = "degraded"
			payload.Cache = err.Error()
		}
	}

	response.RespondJSON(w, http.StatusOK, payload)
}
