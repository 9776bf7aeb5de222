package handler

import (
	"encoding/json"
	"net/http"

	"roombook/internal/notify/service"
	httputil "roombook/pkg/http"
	"roombook/pkg/logger"
	"roombook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type CalendarHandler struct {
	service service.CalendarService
	log     *logger.Logger
}

func NewCalendarHandler(service service.CalendarService, log *logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		log:     log,
	}
}

func (h *CalendarHandler) Send(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CalendarEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Send", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	result, err := h.service.Send(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Send", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Send", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CalendarHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/notify/calendar", h.Send)
}
