package handler

import (
	"net/http"

	"roombook/internal/gateway/health"
	httputil "roombook/pkg/http"
	"roombook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// HealthHandler exposes the aggregate downstream view. It reports, it
// never rejects: a reservation attempt is the only real test of the
// flow, so the probe answers 200 regardless of what it finds.
type HealthHandler struct {
	aggregator *health.Aggregator
	log        *logger.Logger
}

func NewHealthHandler(aggregator *health.Aggregator, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		aggregator: aggregator,
		log:        log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	report := h.aggregator.Probe(r.Context())

	if err := httputil.WriteJSON(w, http.StatusOK, report); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
