package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/platoo/payment-service/api/middleware"
	"github.com/platoo/payment-service/api/services/checkout/app"
)

// Handler translates the checkout service results into the HTTP contract.
type Handler struct {
	svc app.Service
}

func NewHandler(svc app.Service) *Handler {
	return &Handler{svc: svc}
}

var validate = validator.New()

// CreateCheckoutSession handles POST /api/checkout.
func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req app.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error().Err(err).Msg("failed to decode checkout request")
		writeJSON(w, http.StatusBadRequest, app.CheckoutResponse{
			Status:  app.CheckoutStatusFailed,
			Message: "Invalid request payload",
		})
		return
	}

	if err := validate.Struct(&req); err != nil {
		logger.Error().Err(err).Msg("validation error on checkout request")
		writeJSON(w, http.StatusBadRequest, app.CheckoutResponse{
			Status:  app.CheckoutStatusFailed,
			Message: "Validation error: " + err.Error(),
		})
		return
	}

	resp, err := h.svc.CreateCheckoutSession(req)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create checkout session")
		writeJSON(w, http.StatusInternalServerError, app.CheckoutResponse{
			Status:  app.CheckoutStatusFailed,
			Message: "Stripe error: " + app.GatewayMessage(err),
		})
		return
	}

	logger.Info().
		Str("session_id", resp.SessionID).
		Str("order_id", resp.OrderID).
		Msg("payment session created")
	writeJSON(w, http.StatusOK, resp)
}

// VerifyPayment handles GET /api/verify-payment/{sessionId}.
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	sessionID := chi.URLParam(r, "sessionId")

	resp, err := h.svc.VerifyPayment(sessionID)
	if err != nil {
		logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to verify payment")
		writeJSON(w, http.StatusInternalServerError, app.VerifyPaymentResponse{
			Status:  app.VerifyStatusFailed,
			Message: "Stripe error: " + app.GatewayMessage(err),
		})
		return
	}

	// A session that exists but is not paid is a business outcome, not a fault.
	if resp.Status != app.VerifyStatusSuccess {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
