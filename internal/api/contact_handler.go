package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"guitaracademy/internal/entities"
	"guitaracademy/internal/service"
	"guitaracademy/internal/validation"
)

type ContactHandler struct {
	notify *service.NotifyService
	logger *zap.Logger
}

func NewContactHandler(notify *service.NotifyService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{notify: notify, logger: logger}
}

// Contact accepts a contact-form submission and dispatches it by email.
// Delivery detail stays in the server log; clients only ever see a generic
// failure message.
func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("rejected malformed contact payload", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if errs := validation.ValidateStruct(req); errs != nil {
		h.logger.Debug("rejected invalid contact form", zap.Any("fields", errs))
		respondError(w, http.StatusBadRequest, validation.FormatValidationErrors(errs))
		return
	}

	notification := entities.ContactNotification{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Message:        req.Message,
		LessonDate:     req.LessonDate,
		LessonTime:     req.LessonTime,
		LessonDuration: req.LessonDuration,
		LessonPrice:    req.LessonPrice,
	}
	if err := h.notify.SendContactNotification(r.Context(), notification); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	respondJSON(w, http.StatusOK, ContactResponse{Success: true})
}
