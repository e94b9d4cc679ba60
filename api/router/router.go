package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/platoo/payment-service/api/bootstrap"
	"github.com/platoo/payment-service/api/config"
	"github.com/platoo/payment-service/api/middleware"
	"github.com/platoo/payment-service/api/services/checkout/rest"
)

// NewRouter returns the central HTTP router for the API.
// It maps the checkout service to the storefront-facing HTTP endpoints and
// applies the single-origin CORS policy.
func NewRouter(log zerolog.Logger) http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers re-check).
	if err := bootstrap.Ensure(); err != nil {
		log.Error().Err(err).Msg("bootstrap ensure failed")
	}

	frontendOrigin := "http://localhost:8000"
	if config.AppConfig != nil {
		frontendOrigin = config.AppConfig.FrontendOrigin
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	// Browser callers are restricted to the configured storefront origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	h := rest.NewHandler(bootstrap.GetCheckoutService())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/checkout", h.CreateCheckoutSession)
		r.Get("/verify-payment/{sessionId}", h.VerifyPayment)
	})

	return r
}
