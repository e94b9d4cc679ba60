package bootstrap

import (
	"fmt"
	"sync"

	"github.com/platoo/payment-service/api/config"
	checkoutapp "github.com/platoo/payment-service/api/services/checkout/app"
	stripegw "github.com/platoo/payment-service/api/services/checkout/gateway/stripe"
)

var checkoutService checkoutapp.Service
var initOnce sync.Once
var initErr error

// Init initializes config and the Stripe client, and wires services.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if checkoutService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	checkoutService = checkoutapp.NewService(
		stripegw.New(config.AppConfig.StripeSecretKey),
		checkoutapp.CheckoutURLs{
			SuccessURL: config.AppConfig.SuccessURL,
			CancelURL:  config.AppConfig.CancelURL,
		},
	)
	return nil
}

func GetCheckoutService() checkoutapp.Service { return checkoutService }

// SetCheckoutService allows tests to inject a stub implementation.
func SetCheckoutService(s checkoutapp.Service) { checkoutService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
