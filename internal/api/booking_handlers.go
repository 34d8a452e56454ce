package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"guitaracademy/internal/entities"
	"guitaracademy/internal/service"
)

type BookingHandler struct {
	service *service.BookingService
	logger  *zap.Logger
}

func NewBookingHandler(svc *service.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: svc, logger: logger}
}

// CreateCheckoutSession creates a hosted checkout session for a lesson
// booking and returns its id. The caller redirects the browser to the
// processor; an absent id means failure and no redirect may happen.
func (h *BookingHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req CreateCheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("rejected malformed checkout payload", zap.Error(err))
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	handle, err := h.service.CreateCheckoutSession(entities.CheckoutSessionRequest{
		LessonTitle: req.LessonTitle,
		Price:       req.Price,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Message:     req.Message,
	})
	if err != nil {
		respondError(w, service.HTTPStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, CreateCheckoutSessionResponse{ID: handle.ID})
}

// VerifyPayment reports whether the checkout session named by the session_id
// query parameter was paid.
func (h *BookingHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	result, err := h.service.VerifyPayment(sessionID)
	if err != nil {
		respondError(w, service.HTTPStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}
