package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

func TestCreateCheckoutSession_ReturnsURL(t *testing.T) {
	userRepo := newFakeUserRepo()
	provider := &fakePaymentProvider{
		session: usecasecontract.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"},
	}
	uc := NewBillingUsecase(userRepo, provider, testLogger{})

	url, err := uc.CreateCheckoutSession(context.Background(), "caller", "caller@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_1", url)
	assert.Equal(t, 1, provider.createCalls)
}

func TestCreateCheckoutSession_AlreadyPremium(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.ensure("caller").IsPremium = true
	provider := &fakePaymentProvider{}
	uc := NewBillingUsecase(userRepo, provider, testLogger{})

	_, err := uc.CreateCheckoutSession(context.Background(), "caller", "caller@example.com")
	assert.ErrorIs(t, err, ErrAlreadyPremium)
	assert.Zero(t, provider.createCalls, "provider must not be contacted for premium callers")
}

func TestHandleProviderEvent_GrantsPremiumIdempotently(t *testing.T) {
	userRepo := newFakeUserRepo()
	provider := &fakePaymentProvider{
		parsed: &usecasecontract.CheckoutCompleted{SessionID: "cs_1", UID: "caller"},
	}
	uc := NewBillingUsecase(userRepo, provider, testLogger{})
	ctx := context.Background()

	err := uc.HandleProviderEvent(ctx, []byte("{}"), "sig")
	assert.NoError(t, err)
	assert.True(t, userRepo.users["caller"].IsPremium)
	upgradedAt := userRepo.users["caller"].UpgradedAt
	assert.NotNil(t, upgradedAt)

	// At-least-once delivery: the duplicate succeeds without side effects.
	err = uc.HandleProviderEvent(ctx, []byte("{}"), "sig")
	assert.NoError(t, err)
	assert.Equal(t, upgradedAt, userRepo.users["caller"].UpgradedAt)
}

func TestHandleProviderEvent_IgnoresOtherEventTypes(t *testing.T) {
	userRepo := newFakeUserRepo()
	provider := &fakePaymentProvider{parsed: nil}
	uc := NewBillingUsecase(userRepo, provider, testLogger{})

	err := uc.HandleProviderEvent(context.Background(), []byte("{}"), "sig")
	assert.NoError(t, err)
	assert.Empty(t, userRepo.users)
}

func TestHandleProviderEvent_SignatureErrorPropagates(t *testing.T) {
	userRepo := newFakeUserRepo()
	provider := &fakePaymentProvider{parseErr: usecasecontract.ErrInvalidSignature}
	uc := NewBillingUsecase(userRepo, provider, testLogger{})

	err := uc.HandleProviderEvent(context.Background(), []byte("{}"), "bad-sig")
	assert.ErrorIs(t, err, usecasecontract.ErrInvalidSignature)
	assert.Empty(t, userRepo.users)
}

func TestHandleProviderEvent_MissingUIDSkipped(t *testing.T) {
	userRepo := newFakeUserRepo()
	provider := &fakePaymentProvider{
		parsed: &usecasecontract.CheckoutCompleted{SessionID: "cs_1"},
	}
	uc := NewBillingUsecase(userRepo, provider, testLogger{})

	err := uc.HandleProviderEvent(context.Background(), []byte("{}"), "sig")
	assert.NoError(t, err)
	assert.Empty(t, userRepo.users)
}
