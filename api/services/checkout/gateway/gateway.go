package gateway

import stripe "github.com/stripe/stripe-go/v72"

// StripeGateway abstracts Stripe SDK operations needed by the app layer.
// Methods return values (not pointers) to respect the project's preference
// to avoid pointer types in public interfaces.
type StripeGateway interface {
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (stripe.CheckoutSession, error)
	GetCheckoutSession(id string) (stripe.CheckoutSession, error)
}
