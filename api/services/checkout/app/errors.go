package app

import (
	"errors"
	"strings"

	stripe "github.com/stripe/stripe-go/v72"
)

// Typed errors for the checkout app layer. These enable HTTP mapping without
// relying on SDK-specific error types at the transport layer.
var (
	// ErrGateway indicates a failure from the Stripe gateway / API calls.
	ErrGateway = errors.New("gateway error")
)

// GatewayMessage extracts the human-readable provider detail from a gateway
// failure, preferring the Stripe API error message over transport noise.
func GatewayMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return strings.TrimPrefix(err.Error(), ErrGateway.Error()+": ")
}
