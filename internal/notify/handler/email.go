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

type EmailHandler struct {
	service service.EmailService
	log     *logger.Logger
}

func NewEmailHandler(service service.EmailService, log *logger.Logger) *EmailHandler {
	return &EmailHandler{
		service: service,
		log:     log,
	}
}

func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.EmailRequest
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

func (h *EmailHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/notify/email", h.Send)
}
