package contract

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	// GetSiteDomain returns the public site origin used to build the payment
	// success/cancel redirect URLs.
	GetSiteDomain() string
	// GetPremiumProductName returns the display name of the one-time premium purchase.
	GetPremiumProductName() string
	// GetPremiumUnitAmount returns the premium price in the currency's minor unit.
	GetPremiumUnitAmount() int64
	// GetPremiumCurrency returns the ISO currency code of the premium price.
	GetPremiumCurrency() string
}
