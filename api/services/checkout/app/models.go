package app

// ProductRequest is the checkout payload sent by the storefront. Amount is in
// major currency units (13.74 means 13 dollars 74 cents). Quantity is accepted
// for forward compatibility, but the storefront sends the already-multiplied
// total as amount, so the priced line item is always a single unit.
type ProductRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Quantity int64   `json:"quantity"`
	Name     string  `json:"name" validate:"required"`
	Currency string  `json:"currency"`
	// OrderID ties the session back to an application order. Generated when
	// the storefront does not supply one.
	OrderID string `json:"orderId"`
}

// CheckoutResponse is the envelope returned for a session-creation request.
type CheckoutResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	SessionID  string `json:"sessionId,omitempty"`
	SessionURL string `json:"sessionUrl,omitempty"`
	OrderID    string `json:"orderId,omitempty"`
}

// VerifyPaymentResponse reports the outcome of a payment verification.
// OrderID is present only on success, Message only on failure.
type VerifyPaymentResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"orderId,omitempty"`
	Message string `json:"message,omitempty"`
}

// Status values and messages. Creation and verification use different casing
// because the storefront matches on these strings verbatim.
const (
	CheckoutStatusSuccess = "SUCCESS"
	CheckoutStatusFailed  = "FAILED"

	VerifyStatusSuccess = "success"
	VerifyStatusFailed  = "failed"

	MessageSessionCreated       = "Payment session created"
	MessagePaymentNotSuccessful = "Payment not successful."
)

// OrderIDMetadataKey is the checkout-session metadata key carrying the order id.
const OrderIDMetadataKey = "order_id"

// DefaultCurrency applies when the request omits the currency code.
const DefaultCurrency = "USD"
