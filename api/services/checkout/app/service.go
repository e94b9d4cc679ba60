package app

import (
	"fmt"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v72"

	gw "github.com/platoo/payment-service/api/services/checkout/gateway"
)

// Service defines the business operations for the checkout domain.
type Service interface {
	CreateCheckoutSession(req ProductRequest) (CheckoutResponse, error)
	VerifyPayment(sessionID string) (VerifyPaymentResponse, error)
}

// CheckoutURLs carries the redirect targets handed to Stripe at session
// creation. SuccessURL keeps the {CHECKOUT_SESSION_ID} placeholder for Stripe
// to substitute.
type CheckoutURLs struct {
	SuccessURL string
	CancelURL  string
}

type serviceImpl struct {
	gw   gw.StripeGateway
	urls CheckoutURLs
}

func NewService(g gw.StripeGateway, urls CheckoutURLs) Service {
	return serviceImpl{gw: g, urls: urls}
}

// CreateCheckoutSession opens a hosted single-payment session for one line
// item. The request quantity is not used for pricing: the line item is always
// a single unit of the requested amount.
func (s serviceImpl) CreateCheckoutSession(req ProductRequest) (CheckoutResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	orderID := req.OrderID
	if orderID == "" {
		orderID = uuid.New().String()
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.urls.SuccessURL),
		CancelURL:          stripe.String(s.urls.CancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(ToMinorUnits(req.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Name),
					},
				},
			},
		},
	}
	// The verifier reads this back to associate the payment with an order.
	params.AddMetadata(OrderIDMetadataKey, orderID)

	session, err := s.gw.CreateCheckoutSession(params)
	if err != nil {
		return CheckoutResponse{}, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	return CheckoutResponse{
		Status:     CheckoutStatusSuccess,
		Message:    MessageSessionCreated,
		SessionID:  session.ID,
		SessionURL: session.URL,
		OrderID:    orderID,
	}, nil
}

// VerifyPayment re-reads the session from Stripe and maps its payment status.
// Only the exact status "paid" counts as success; any other status is a normal
// business failure, not an error.
func (s serviceImpl) VerifyPayment(sessionID string) (VerifyPaymentResponse, error) {
	session, err := s.gw.GetCheckoutSession(sessionID)
	if err != nil {
		return VerifyPaymentResponse{}, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return VerifyPaymentResponse{
			Status:  VerifyStatusFailed,
			Message: MessagePaymentNotSuccessful,
		}, nil
	}

	return VerifyPaymentResponse{
		Status:  VerifyStatusSuccess,
		OrderID: session.Metadata[OrderIDMetadataKey],
	}, nil
}
