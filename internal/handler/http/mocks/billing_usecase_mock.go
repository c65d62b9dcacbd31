package mocks

import (
	"context"

	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// MockBillingUsecase is a mock implementation of the IBillingUseCase interface
type MockBillingUsecase struct {
	// Errors returned verbatim when set
	CheckoutErr error
	WebhookErr  error

	// Return values
	MockCheckoutURL string

	// Recorded call arguments
	LastPayload   []byte
	LastSignature string
	WebhookCalls  int
}

// Ensure MockBillingUsecase implements the correct interface for NewBillingHandler
var _ usecasecontract.IBillingUseCase = (*MockBillingUsecase)(nil)

func NewMockBillingUsecase() *MockBillingUsecase {
	return &MockBillingUsecase{
		MockCheckoutURL: "https://checkout.example.com/session/mock",
	}
}

func (m *MockBillingUsecase) CreateCheckoutSession(ctx context.Context, callerUID, callerEmail string) (string, error) {
	if m.CheckoutErr != nil {
		return "", m.CheckoutErr
	}
	return m.MockCheckoutURL, nil
}

func (m *MockBillingUsecase) HandleProviderEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	m.WebhookCalls++
	m.LastPayload = payload
	m.LastSignature = signatureHeader
	return m.WebhookErr
}
