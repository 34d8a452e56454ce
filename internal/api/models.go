package api

import "guitaracademy/internal/entities"

// Checkout
type CreateCheckoutSessionRequest struct {
	LessonTitle string `json:"lessonTitle"`
	Price       int    `json:"price"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Message     string `json:"message"`
}

type CreateCheckoutSessionResponse struct {
	ID string `json:"id"`
}

// Contact
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`

	LessonDate     string `json:"lessonDate"`
	LessonTime     string `json:"lessonTime"`
	LessonDuration string `json:"lessonDuration"`
	LessonPrice    string `json:"lessonPrice"`
}

type ContactResponse struct {
	Success bool `json:"success"`
}

// Catalog / schedule
type ScheduleResponse struct {
	TimeSlots   []string                  `json:"timeSlots"`
	Durations   []entities.DurationOption `json:"durations"`
	WindowStart string                    `json:"windowStart"`
	WindowEnd   string                    `json:"windowEnd"`
	DefaultDate string                    `json:"defaultDate"`
}

type BookableDatesResponse struct {
	Dates []string `json:"dates"`
}

type ClientConfigResponse struct {
	StripePublishableKey string `json:"stripePublishableKey"`
	BookingPath          string `json:"bookingPath"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
