package handler

import (
	"encoding/json"
	"net/http"

	"roombook/internal/gateway/saga"
	httputil "roombook/pkg/http"
	"roombook/pkg/logger"
	"roombook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ReservationHandler struct {
	orchestrator *saga.Orchestrator
	log          *logger.Logger
}

func NewReservationHandler(orchestrator *saga.Orchestrator, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		orchestrator: orchestrator,
		log:          log,
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	result, err := h.orchestrator.Execute(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, result); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ReservationHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"service": "gateway",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Root", "operation", "WriteJSON", "error", err)
	}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.POST("/reservations", h.Create)
}
