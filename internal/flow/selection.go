// Package flow models the transient client-side booking and contact state:
// the slot selection a student builds up before paying, and the contact
// dialog's submission lifecycle. Nothing here is persisted.
package flow

import (
	"time"

	"guitaracademy/internal/entities"
)

// Selection holds the currently chosen (date, time, duration) tuple.
// Changing the date invalidates the time and duration picked for the old
// date.
type Selection struct {
	date     time.Time
	dateSet  bool
	timeSlot string
	duration int
}

// SetDate selects a date. When the date actually changes, time and duration
// are reset.
func (s *Selection) SetDate(d time.Time) {
	if s.dateSet && sameDay(s.date, d) {
		return
	}
	s.date = d
	s.dateSet = true
	s.timeSlot = ""
	s.duration = 0
}

// EnsureDefaultDate sets def as the date only when none is selected yet.
func (s *Selection) EnsureDefaultDate(def time.Time) {
	if !s.dateSet {
		s.date = def
		s.dateSet = true
	}
}

func (s *Selection) SetTimeSlot(slot string) {
	s.timeSlot = slot
}

func (s *Selection) SetDuration(minutes int) {
	s.duration = minutes
}

// CanBook reports whether the booking action should be enabled: both a time
// slot and a duration must be chosen.
func (s *Selection) CanBook() bool {
	return s.timeSlot != "" && s.duration != 0
}

// Booking returns the completed (date, time, duration) tuple, or false while
// the selection is still partial.
func (s *Selection) Booking() (entities.BookingSelection, bool) {
	if !s.dateSet || !s.CanBook() {
		return entities.BookingSelection{}, false
	}
	return entities.BookingSelection{
		Date:            s.date,
		TimeSlot:        s.timeSlot,
		DurationMinutes: s.duration,
	}, true
}

// Date returns the selected date and whether one is set.
func (s *Selection) Date() (time.Time, bool) {
	return s.date, s.dateSet
}

func (s *Selection) TimeSlot() string {
	return s.timeSlot
}

func (s *Selection) Duration() int {
	return s.duration
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
