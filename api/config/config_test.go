package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_MissingSecretKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")
	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Stripe Secret Key")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("FRONTEND_ORIGIN", "")
	t.Setenv("SUCCESS_URL", "")
	t.Setenv("CANCEL_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	assert.Equal(t, "http://localhost:8000", cfg.FrontendOrigin)
	assert.Contains(t, cfg.SuccessURL, "{CHECKOUT_SESSION_ID}")
	assert.Equal(t, "http://localhost:8080/cancel", cfg.CancelURL)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("FRONTEND_ORIGIN", "https://shop.example.com")
	t.Setenv("SUCCESS_URL", "https://shop.example.com/done?session_id={CHECKOUT_SESSION_ID}")
	t.Setenv("CANCEL_URL", "https://shop.example.com/cancel")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	assert.Equal(t, "https://shop.example.com", cfg.FrontendOrigin)
	assert.Equal(t, "https://shop.example.com/done?session_id={CHECKOUT_SESSION_ID}", cfg.SuccessURL)
	assert.Equal(t, "https://shop.example.com/cancel", cfg.CancelURL)
	assert.Equal(t, "9090", cfg.HTTPPort)
}
