package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	StripeSecretKey string
	// Origin allowed to call the API from a browser (the storefront).
	FrontendOrigin string
	// Checkout redirect targets. SuccessURL must keep the
	// {CHECKOUT_SESSION_ID} placeholder so Stripe can substitute the id.
	SuccessURL string
	CancelURL  string
	// Server
	HTTPPort  string
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		// Check if .env file exists in current directory
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Load .env file
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		// Move up one directory
		currentDir = filepath.Dir(currentDir)
	}

	// Get required environment variables
	requiredVars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"StripeSecretKey", "STRIPE_SECRET_KEY", "Stripe Secret Key", true},
		{"FrontendOrigin", "FRONTEND_ORIGIN", "Frontend Origin", false},
		{"SuccessURL", "SUCCESS_URL", "Checkout Success URL", false},
		{"CancelURL", "CANCEL_URL", "Checkout Cancel URL", false},
		{"HTTPPort", "PORT", "HTTP Port", false},
		{"LogLevel", "LOG_LEVEL", "Log Level", false},
		{"LogFormat", "LOG_FORMAT", "Log Format", false},
	}

	for _, v := range requiredVars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults mirror the reference deployment (storefront on :8000).
	if config.FrontendOrigin == "" {
		config.FrontendOrigin = "http://localhost:8000"
	}
	if config.SuccessURL == "" {
		config.SuccessURL = "http://localhost:8000/order-confirmation?session_id={CHECKOUT_SESSION_ID}"
	}
	if config.CancelURL == "" {
		config.CancelURL = "http://localhost:8080/cancel"
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "console"
	}

	return config, nil
}
