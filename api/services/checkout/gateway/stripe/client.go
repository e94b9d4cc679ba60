package stripegw

import (
	stripe "github.com/stripe/stripe-go/v72"
	stripeclient "github.com/stripe/stripe-go/v72/client"

	gw "github.com/platoo/payment-service/api/services/checkout/gateway"
)

// client wraps a dedicated Stripe API client. The secret key is bound once at
// construction instead of mutating the SDK's process-wide stripe.Key.
type client struct{ api *stripeclient.API }

// New returns a StripeGateway backed by the official Stripe SDK.
func New(secretKey string) gw.StripeGateway {
	api := &stripeclient.API{}
	api.Init(secretKey, nil)
	return client{api: api}
}

func (c client) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	sessPtr, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}
	if sessPtr == nil {
		return stripe.CheckoutSession{}, nil
	}
	return *sessPtr, nil
}

func (c client) GetCheckoutSession(id string) (stripe.CheckoutSession, error) {
	sessPtr, err := c.api.CheckoutSessions.Get(id, nil)
	if err != nil {
		return stripe.CheckoutSession{}, err
	}
	if sessPtr == nil {
		return stripe.CheckoutSession{}, nil
	}
	return *sessPtr, nil
}
