package service

import (
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeClient is the seam between the booking service and the Stripe API,
// so tests can simulate the processor.
type StripeClient interface {
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(id string) (*stripe.CheckoutSession, error)
}

type stripeAPIClient struct{}

// NewStripeClient configures the global Stripe key and returns the live
// API-backed client.
func NewStripeClient(secretKey string) StripeClient {
	stripe.Key = secretKey
	return &stripeAPIClient{}
}

func (c *stripeAPIClient) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

func (c *stripeAPIClient) GetCheckoutSession(id string) (*stripe.CheckoutSession, error) {
	return session.Get(id, nil)
}
