package api

import (
	"net/http"

	"guitaracademy/internal/service"
)

const dateLayout = "2006-01-02"

type CatalogHandler struct {
	schedule       *service.Schedule
	publishableKey string
}

func NewCatalogHandler(schedule *service.Schedule, publishableKey string) *CatalogHandler {
	return &CatalogHandler{
		schedule:       schedule,
		publishableKey: publishableKey,
	}
}

// GetLessons returns the static lesson catalog.
func (h *CatalogHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, service.ListLessons())
}

// GetSchedule returns the slot grid the booking page renders: fixed time
// slots, duration options with prices, the booking window and the date to
// preselect.
func (h *CatalogHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	first, last := h.schedule.Window()
	respondJSON(w, http.StatusOK, ScheduleResponse{
		TimeSlots:   service.TimeSlots,
		Durations:   service.DurationOptions(),
		WindowStart: first.Format(dateLayout),
		WindowEnd:   last.Format(dateLayout),
		DefaultDate: h.schedule.DefaultDate().Format(dateLayout),
	})
}

// GetBookableDates enumerates every selectable date inside the window.
func (h *CatalogHandler) GetBookableDates(w http.ResponseWriter, r *http.Request) {
	dates := h.schedule.BookableDates()
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}
	respondJSON(w, http.StatusOK, BookableDatesResponse{Dates: out})
}

// GetClientConfig exposes the publishable key the browser needs to start
// the checkout redirect.
func (h *CatalogHandler) GetClientConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ClientConfigResponse{
		StripePublishableKey: h.publishableKey,
		BookingPath:          "/lessons",
	})
}
