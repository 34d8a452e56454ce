package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"guitaracademy/internal/entities"
	apperrors "guitaracademy/internal/errors"
)

// BookingService creates hosted checkout sessions for lesson bookings and
// verifies payment status on return. There is no booking ledger: every
// submission is an independent request-response pair and nothing prevents
// two students from paying for the same slot.
type BookingService struct {
	stripe  StripeClient
	baseURL string
	logger  *zap.Logger
}

func NewBookingService(stripeClient StripeClient, baseURL string, logger *zap.Logger) *BookingService {
	return &BookingService{
		stripe:  stripeClient,
		baseURL: baseURL,
		logger:  logger,
	}
}

// CreateCheckoutSession forwards a booking intent to the payment processor
// and returns the hosted session's identifier. Booking and contact fields
// ride along as session metadata so they can be read back after payment.
func (s *BookingService) CreateCheckoutSession(req entities.CheckoutSessionRequest) (*entities.CheckoutSessionHandle, error) {
	if req.Price <= 0 {
		return nil, apperrors.ErrBadRequest("price must be a positive integer")
	}
	lessonDate, err := parseISODate(req.Date)
	if err != nil {
		return nil, apperrors.ErrBadRequest("date must be an ISO-8601 string")
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.LessonTitle),
						Description: stripe.String(fmt.Sprintf("Guitar lesson on %s", formatLessonDate(lessonDate))),
					},
					// price is whole dollars; Stripe wants cents
					UnitAmount: stripe.Int64(int64(req.Price) * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.baseURL + "/lessons/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.baseURL + "/lessons"),
	}
	params.AddMetadata("name", req.Name)
	params.AddMetadata("phone", req.Phone)
	params.AddMetadata("email", req.Email)
	params.AddMetadata("message", req.Message)
	params.AddMetadata("lessonTitle", req.LessonTitle)
	params.AddMetadata("date", req.Date)

	sess, err := s.stripe.CreateCheckoutSession(params)
	if err != nil {
		s.logger.Error("stripe checkout session creation failed",
			zap.Error(err),
			zap.String("lesson", req.LessonTitle),
			zap.Int("price", req.Price),
		)
		return nil, apperrors.ErrInternal(stripeErrorMessage(err, "Error creating checkout session"))
	}
	if sess == nil || sess.ID == "" {
		s.logger.Error("stripe returned a session without an id")
		return nil, apperrors.ErrInternal("Error creating checkout session")
	}

	return &entities.CheckoutSessionHandle{ID: sess.ID}, nil
}

// VerifyPayment asks the payment processor whether the given session was
// paid. A real system would persist the booking, email a confirmation and
// update availability here; that extension point is intentionally left
// unimplemented.
func (s *BookingService) VerifyPayment(sessionID string) (*entities.PaymentVerificationResult, error) {
	if sessionID == "" {
		return nil, apperrors.ErrBadRequest("Session ID is required")
	}

	sess, err := s.stripe.GetCheckoutSession(sessionID)
	if err != nil {
		s.logger.Error("stripe checkout session lookup failed",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return nil, apperrors.ErrInternal("Error verifying payment")
	}

	status := entities.VerificationError
	if sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		status = entities.VerificationSuccess
	}
	return &entities.PaymentVerificationResult{Status: status}, nil
}

// HTTPStatus maps a booking error to an HTTP status code.
func HTTPStatus(err error) int {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

func parseISODate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// formatLessonDate renders M/D/YYYY, matching the wording shown on the
// hosted checkout page.
func formatLessonDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

func stripeErrorMessage(err error, fallback string) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return fallback
}
