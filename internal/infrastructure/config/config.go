package config

import (
	"os"
	"strconv"

	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	SiteDomain         string
	PremiumProductName string
	PremiumUnitAmount  int64
	PremiumCurrency    string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		SiteDomain:         getEnv("SITE_DOMAIN", "http://localhost:5173"),
		PremiumProductName: getEnv("PREMIUM_PRODUCT_NAME", "Premium Lifetime Access"),
		PremiumUnitAmount:  int64(getEnvAsInt("PREMIUM_UNIT_AMOUNT", 1500*100)),
		PremiumCurrency:    getEnv("PREMIUM_CURRENCY", "bdt"),
	}
}

// GetSiteDomain returns the public site origin for payment redirects.
func (c *Config) GetSiteDomain() string {
	return c.SiteDomain
}

// GetPremiumProductName returns the display name of the premium purchase.
func (c *Config) GetPremiumProductName() string {
	return c.PremiumProductName
}

// GetPremiumUnitAmount returns the premium price in the currency's minor unit.
func (c *Config) GetPremiumUnitAmount() int64 {
	return c.PremiumUnitAmount
}

// GetPremiumCurrency returns the ISO currency code of the premium price.
func (c *Config) GetPremiumCurrency() string {
	return c.PremiumCurrency
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
