package entities

import "time"

// BookingSelection is the in-memory (date, time, duration) tuple a student
// picks before paying. It is never persisted.
type BookingSelection struct {
	Date            time.Time
	TimeSlot        string
	DurationMinutes int
}

// CheckoutSessionRequest carries a booking intent to the payment processor.
// Built once at submission time and discarded afterwards.
type CheckoutSessionRequest struct {
	LessonTitle string
	Price       int // whole dollars
	Date        string
	Time        string
	Duration    int
	Name        string
	Phone       string
	Email       string
	Message     string
}

// CheckoutSessionHandle is the opaque session identifier issued by the
// payment processor. Consumed immediately for the browser redirect.
type CheckoutSessionHandle struct {
	ID string `json:"id"`
}

const (
	VerificationSuccess = "success"
	VerificationError   = "error"
)

// PaymentVerificationResult reports whether a checkout session was paid.
type PaymentVerificationResult struct {
	Status string `json:"status"`
}
