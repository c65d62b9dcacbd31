package contract

import (
	"context"
)

type IBillingUseCase interface {
	// CreateCheckoutSession starts the premium upgrade. Rejects callers that
	// already hold the entitlement.
	CreateCheckoutSession(ctx context.Context, callerUID, callerEmail string) (string, error)
	// HandleProviderEvent verifies and applies a provider-signed event. Safe to
	// invoke multiple times for the same event.
	HandleProviderEvent(ctx context.Context, payload []byte, signatureHeader string) error
}
