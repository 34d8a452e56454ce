package service

import (
	"time"

	"guitaracademy/internal/entities"
)

const (
	// Bookings open two days out and close one month out.
	minLeadDays  = 2
	windowMonths = 1
)

// TimeSlots is the fixed ordered list of bookable lesson start times.
var TimeSlots = []string{
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

// DurationOptions lists the offered lesson lengths with their prices.
func DurationOptions() []entities.DurationOption {
	return []entities.DurationOption{
		{Minutes: 30, Label: "30 minutes", Price: PriceForDuration(30)},
		{Minutes: 60, Label: "60 minutes", Price: PriceForDuration(60)},
	}
}

// Schedule computes the rolling booking window. All dates are evaluated in
// the studio's timezone. Its Valid* checks mirror what the booking page
// enforces client side; the checkout endpoint itself accepts whatever the
// client sends.
type Schedule struct {
	loc *time.Location
	now func() time.Time
}

func NewSchedule() *Schedule {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.FixedZone("EST", -5*60*60) // fallback
	}
	return &Schedule{loc: loc, now: time.Now}
}

// Window returns the inclusive [first, last] bookable calendar dates.
func (s *Schedule) Window() (time.Time, time.Time) {
	today := s.today()
	return today.AddDate(0, 0, minLeadDays), addMonthsClamped(today, windowMonths)
}

// IsBookable reports whether d is a weekday inside the booking window.
// Only d's calendar date matters, whatever location it carries.
func (s *Schedule) IsBookable(d time.Time) bool {
	year, month, day := d.Date()
	d = time.Date(year, month, day, 0, 0, 0, 0, s.loc)
	first, last := s.Window()
	if d.Before(first) || d.After(last) {
		return false
	}
	return isWeekday(d)
}

// DefaultDate is the nearest bookable weekday at least two days out.
func (s *Schedule) DefaultDate() time.Time {
	d, _ := s.Window()
	for !isWeekday(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// BookableDates enumerates every bookable date in the window, in order.
func (s *Schedule) BookableDates() []time.Time {
	first, last := s.Window()
	var dates []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// ValidTimeSlot reports whether slot is one of the fixed start times.
func (s *Schedule) ValidTimeSlot(slot string) bool {
	for _, t := range TimeSlots {
		if t == slot {
			return true
		}
	}
	return false
}

// ValidDuration reports whether minutes is an offered lesson length.
func (s *Schedule) ValidDuration(minutes int) bool {
	return minutes == 30 || minutes == 60
}

// ValidSelection reports whether a completed selection is bookable: date in
// window on a weekday, time slot from the fixed list, offered duration.
func (s *Schedule) ValidSelection(sel entities.BookingSelection) bool {
	return s.IsBookable(sel.Date) && s.ValidTimeSlot(sel.TimeSlot) && s.ValidDuration(sel.DurationMinutes)
}

func (s *Schedule) today() time.Time {
	return truncateToDay(s.now().In(s.loc))
}

// addMonthsClamped advances t by whole months, clamping to the last day of
// the target month instead of overflowing (Jan 31 + 1 month = Feb 28, not
// Mar 3 as AddDate would give).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if lastDay := first.AddDate(0, 1, -1).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isWeekday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}
