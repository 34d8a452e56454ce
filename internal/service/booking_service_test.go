package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"guitaracademy/internal/entities"
)

// fakeStripeClient simulates the payment processor.
type fakeStripeClient struct {
	created    []*stripe.CheckoutSessionParams
	createResp *stripe.CheckoutSession
	createErr  error

	getResp *stripe.CheckoutSession
	getErr  error
}

func (f *fakeStripeClient) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.created = append(f.created, params)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResp, nil
}

func (f *fakeStripeClient) GetCheckoutSession(id string) (*stripe.CheckoutSession, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResp, nil
}

func newBookingService(client StripeClient) *BookingService {
	return NewBookingService(client, "https://academy.example.com", zap.NewNop())
}

func checkoutRequest() entities.CheckoutSessionRequest {
	return entities.CheckoutSessionRequest{
		LessonTitle: "60-Minute Private Lesson",
		Price:       60,
		Date:        "2025-06-10",
		Time:        "1:00 PM",
		Duration:    60,
		Name:        "Alex Rivera",
		Phone:       "+1 555 010 2030",
		Email:       "alex@example.com",
		Message:     "Looking forward to it",
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	client := &fakeStripeClient{createResp: &stripe.CheckoutSession{ID: "cs_test_123"}}
	svc := newBookingService(client)

	handle, err := svc.CreateCheckoutSession(checkoutRequest())
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", handle.ID)

	require.Len(t, client.created, 1)
	params := client.created[0]

	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, int64(1), *item.Quantity)
	assert.Equal(t, int64(6000), *item.PriceData.UnitAmount)
	assert.Equal(t, "usd", *item.PriceData.Currency)
	assert.Equal(t, "60-Minute Private Lesson", *item.PriceData.ProductData.Name)
	assert.Equal(t, "Guitar lesson on 6/10/2025", *item.PriceData.ProductData.Description)

	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *params.Mode)
	assert.Equal(t, "https://academy.example.com/lessons/success?session_id={CHECKOUT_SESSION_ID}", *params.SuccessURL)
	assert.Equal(t, "https://academy.example.com/lessons", *params.CancelURL)

	// Booking and contact fields travel as opaque metadata.
	assert.Equal(t, "Alex Rivera", params.Metadata["name"])
	assert.Equal(t, "+1 555 010 2030", params.Metadata["phone"])
	assert.Equal(t, "alex@example.com", params.Metadata["email"])
	assert.Equal(t, "Looking forward to it", params.Metadata["message"])
	assert.Equal(t, "60-Minute Private Lesson", params.Metadata["lessonTitle"])
	assert.Equal(t, "2025-06-10", params.Metadata["date"])
}

func TestCreateCheckoutSession_AcceptsFullTimestamp(t *testing.T) {
	client := &fakeStripeClient{createResp: &stripe.CheckoutSession{ID: "cs_test_ts"}}
	svc := newBookingService(client)

	req := checkoutRequest()
	req.Date = "2025-06-10T17:00:00Z"
	_, err := svc.CreateCheckoutSession(req)
	require.NoError(t, err)

	item := client.created[0].LineItems[0]
	assert.Equal(t, "Guitar lesson on 6/10/2025", *item.PriceData.ProductData.Description)
}

func TestCreateCheckoutSession_RejectsNonPositivePrice(t *testing.T) {
	client := &fakeStripeClient{}
	svc := newBookingService(client)

	for _, price := range []int{0, -5} {
		req := checkoutRequest()
		req.Price = price
		_, err := svc.CreateCheckoutSession(req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	}
	assert.Empty(t, client.created, "processor must not be called")
}

func TestCreateCheckoutSession_RejectsBadDate(t *testing.T) {
	svc := newBookingService(&fakeStripeClient{})

	req := checkoutRequest()
	req.Date = "next tuesday"
	_, err := svc.CreateCheckoutSession(req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestCreateCheckoutSession_SurfacesStripeMessage(t *testing.T) {
	client := &fakeStripeClient{createErr: &stripe.Error{Msg: "Your card declined the request"}}
	svc := newBookingService(client)

	_, err := svc.CreateCheckoutSession(checkoutRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.Equal(t, "Your card declined the request", err.Error())
}

func TestCreateCheckoutSession_GenericFallbackMessage(t *testing.T) {
	client := &fakeStripeClient{createErr: fmt.Errorf("connection reset")}
	svc := newBookingService(client)

	_, err := svc.CreateCheckoutSession(checkoutRequest())
	require.Error(t, err)
	assert.Equal(t, "Error creating checkout session", err.Error())
}

func TestCreateCheckoutSession_MissingIDIsFailure(t *testing.T) {
	client := &fakeStripeClient{createResp: &stripe.CheckoutSession{}}
	svc := newBookingService(client)

	handle, err := svc.CreateCheckoutSession(checkoutRequest())
	require.Error(t, err)
	assert.Nil(t, handle)
}

func TestCreateCheckoutSession_NoConflictDetection(t *testing.T) {
	// Two identical (date, time, duration) submissions both succeed; there
	// is no reservation step anywhere.
	client := &fakeStripeClient{createResp: &stripe.CheckoutSession{ID: "cs_test_dup"}}
	svc := newBookingService(client)

	_, err := svc.CreateCheckoutSession(checkoutRequest())
	require.NoError(t, err)
	_, err = svc.CreateCheckoutSession(checkoutRequest())
	require.NoError(t, err)

	assert.Len(t, client.created, 2)
}

func TestVerifyPayment_Paid(t *testing.T) {
	client := &fakeStripeClient{getResp: &stripe.CheckoutSession{
		ID:            "cs_test_123",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
	}}
	svc := newBookingService(client)

	result, err := svc.VerifyPayment("cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationSuccess, result.Status)
}

func TestVerifyPayment_NotPaid(t *testing.T) {
	for _, status := range []stripe.CheckoutSessionPaymentStatus{
		stripe.CheckoutSessionPaymentStatusUnpaid,
		stripe.CheckoutSessionPaymentStatusNoPaymentRequired,
		"",
	} {
		client := &fakeStripeClient{getResp: &stripe.CheckoutSession{
			ID:            "cs_test_123",
			PaymentStatus: status,
		}}
		svc := newBookingService(client)

		result, err := svc.VerifyPayment("cs_test_123")
		require.NoError(t, err)
		assert.Equal(t, entities.VerificationError, result.Status, "status %q", status)
	}
}

func TestVerifyPayment_MissingSessionID(t *testing.T) {
	svc := newBookingService(&fakeStripeClient{})

	_, err := svc.VerifyPayment("")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestVerifyPayment_LookupFailure(t *testing.T) {
	client := &fakeStripeClient{getErr: errors.New("no such session")}
	svc := newBookingService(client)

	_, err := svc.VerifyPayment("cs_missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.Equal(t, "Error verifying payment", err.Error())
}
