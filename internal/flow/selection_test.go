package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	d, _ := time.Parse("2006-01-02", value)
	return d
}

func TestSelection_CanBookOnlyWithTimeAndDuration(t *testing.T) {
	var s Selection
	s.SetDate(day("2025-06-10"))
	assert.False(t, s.CanBook())

	s.SetTimeSlot("1:00 PM")
	assert.False(t, s.CanBook(), "duration still missing")

	s.SetDuration(60)
	assert.True(t, s.CanBook())
}

func TestSelection_DateChangeResetsTimeAndDuration(t *testing.T) {
	var s Selection
	s.SetDate(day("2025-06-10"))
	s.SetTimeSlot("1:00 PM")
	s.SetDuration(30)
	assert.True(t, s.CanBook())

	s.SetDate(day("2025-06-11"))
	assert.Empty(t, s.TimeSlot())
	assert.Zero(t, s.Duration())
	assert.False(t, s.CanBook())
}

func TestSelection_ReselectingSameDateKeepsChoices(t *testing.T) {
	var s Selection
	s.SetDate(day("2025-06-10"))
	s.SetTimeSlot("1:00 PM")
	s.SetDuration(30)

	s.SetDate(day("2025-06-10"))
	assert.Equal(t, "1:00 PM", s.TimeSlot())
	assert.Equal(t, 30, s.Duration())
}

func TestSelection_BookingTuple(t *testing.T) {
	var s Selection
	_, ok := s.Booking()
	assert.False(t, ok)

	s.SetDate(day("2025-06-10"))
	s.SetTimeSlot("1:00 PM")
	_, ok = s.Booking()
	assert.False(t, ok, "duration still missing")

	s.SetDuration(60)
	sel, ok := s.Booking()
	assert.True(t, ok)
	assert.Equal(t, day("2025-06-10"), sel.Date)
	assert.Equal(t, "1:00 PM", sel.TimeSlot)
	assert.Equal(t, 60, sel.DurationMinutes)
}

func TestSelection_EnsureDefaultDate(t *testing.T) {
	var s Selection
	_, ok := s.Date()
	assert.False(t, ok)

	s.EnsureDefaultDate(day("2025-06-06"))
	d, ok := s.Date()
	assert.True(t, ok)
	assert.Equal(t, day("2025-06-06"), d)

	// A default never overrides an explicit choice.
	s.EnsureDefaultDate(day("2025-06-09"))
	d, _ = s.Date()
	assert.Equal(t, day("2025-06-06"), d)
}
